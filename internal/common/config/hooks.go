package config

import (
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// CustomHooks are the decode hooks applied when unmarshalling configuration,
// covering the string conversions the config structs rely on (e.g. "30s" into
// a time.Duration).
var CustomHooks = []viper.DecoderConfigOption{
	viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)),
}
