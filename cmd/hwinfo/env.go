package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ajroetker/go-hwintrinsic/hwi/target"
)

// checkEnvironmentVariables sets every flag of command that was not given on
// the command line from HWINFO_<COMMAND>_<FLAG>. The global settings are read
// by target.LoadConfig from HWINFO_<SETTING>.
func checkEnvironmentVariables(command *cobra.Command) error {
	if !command.HasParent() {
		return nil
	}
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvPrefix(fmt.Sprintf("%s_%s", target.EnvPrefix, command.Name()))

	var errs []string
	command.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
		name := strings.ReplaceAll(f.Name, "-", "_")
		if f.Changed || !v.IsSet(name) {
			return
		}
		if err := command.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(name))); err != nil {
			errs = append(errs, err.Error())
		}
	})
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("mapping environment variables to flags: %s", strings.Join(errs, "; "))
}
