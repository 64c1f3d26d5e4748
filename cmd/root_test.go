/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cmd

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/shorthand/config"
	"bennypowers.dev/shorthand/internal/mapfs"
)

func TestLoadConfig(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/work/custom.toml", "format = \"css\"\n", 0644)
	mfs.AddFile("/work/bad.toml", "format = [", 0644)

	cfg, err := loadConfig(mfs, "/work/custom.toml")
	require.NoError(t, err)
	assert.Equal(t, "css", cfg.Format)

	_, err = loadConfig(mfs, "/work/bad.toml")
	assert.ErrorContains(t, err, "error loading config")

	_, err = loadConfig(mfs, "/work/missing.yaml")
	assert.Error(t, err)
}

func TestApplyConfig_FlagsWin(t *testing.T) {
	v := viper.New()
	flags := pflag.NewFlagSet("convert", pflag.ContinueOnError)
	flags.String("format", "json", "")
	flags.Bool("kebab", false, "")
	require.NoError(t, v.BindPFlag("convert.format", flags.Lookup("format")))
	require.NoError(t, v.BindPFlag("convert.kebab", flags.Lookup("kebab")))

	applyConfig(v, &config.Config{
		Format:     "yaml",
		Kebab:      true,
		Properties: []string{"border-radius"},
	})

	assert.Equal(t, "yaml", v.GetString("convert.format"))
	assert.True(t, v.GetBool("convert.kebab"))
	assert.Equal(t, []string{"borderRadius"}, v.GetStringSlice("properties"))

	require.NoError(t, flags.Set("format", "css"))
	assert.Equal(t, "css", v.GetString("convert.format"))
}
