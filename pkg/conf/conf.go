// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package conf

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

const envPrefix = "BENCH"

var (
	app = kingpin.New("compression-sweep", "No help available")
	// Default flags and values.
	logLevelFlag = NewStringFlag(
		"log",
		"Log level: debug, info, warn, error, fatal, panic",
		"error", // Default Error log level.
	)
	isEnvParsed = false
)

// SetHelpPath sets the help message for CLI rendering the file from given file.
func SetHelpPath(readmePath string) {
	readmeData, err := ioutil.ReadFile(readmePath)
	if err != nil {
		panic(errors.Wrapf(err, "reading %s failed", readmePath))
	}
	app.Help = string(readmeData)
}

// SetHelp sets the help message for the CLI.
func SetHelp(help string) {
	app.Help = help
}

// SetAppName sets application name for CLI output.
func SetAppName(name string) {
	app.Name = name
}

// AppName returns specified app name.
func AppName() string {
	return app.Name
}

// LogLevel returns configured logLevel from input option or env variable.
// If it cannot parse the log level, it returns default value.
func LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(logLevelFlag.Value())
	if err == nil {
		return level
	}

	level, err = logrus.ParseLevel(logLevelFlag.defaultValue)
	if err == nil {
		return level
	}

	// Programmer error.
	panic(errors.Wrap(err, "parsing log level failed"))
}

// ParseFlags parse both the command line flags of the process and
// environment variables.
func ParseFlags() error {
	return parse(os.Args[1:])
}

// ParseEnv parse the environment for arguments.
func ParseEnv() error {
	return parse([]string{})
}

func parse(args []string) error {
	_, err := app.Parse(args)
	if err != nil {
		return errors.Wrapf(err, "could not parse command line flags")
	}
	isEnvParsed = true
	return nil
}

type flagDefinition struct{ Name, Value, Default, Help string }

// getFlagsDefinition returns current, default, keys and description for every flag.
// Order is kept from registration because it logically groups flags.
func getFlagsDefinition() (flags []flagDefinition) {
	for _, flag := range app.Model().Flags {
		// Skip kingpin builtin flags that aren't compatible with environment based configuration.
		if strings.Contains(flag.Name, "-") {
			continue
		}

		var value interface{}
		if slv, ok := flag.Value.(*StringListValue); ok {
			value = slv.String()
		} else {
			// kingpin hides its value types, so read the stored value through reflection.
			elem := reflect.ValueOf(flag.Value).Elem()
			switch elem.Kind() {
			case reflect.Int64, reflect.Int:
				// Duration flags are stored directly as int64.
				value = time.Duration(elem.Int())
			case reflect.Struct:
				field := elem.FieldByName("v")
				if !field.IsValid() || field.IsNil() {
					continue
				}
				valueInField := field.Elem()
				switch valueInField.Kind() {
				case reflect.String:
					value = valueInField.String()
				case reflect.Bool:
					value = valueInField.Bool()
				case reflect.Int64, reflect.Int:
					value = valueInField.Int()
				default:
					logrus.Debugf("unhandled flag %s kind=%s", flag.Name, valueInField.Kind())
				}
			}
		}

		flags = append(flags, flagDefinition{
			Name:    flag.Name,
			Help:    flag.Help,
			Default: strings.Join(flag.Default, ","),
			Value:   fmt.Sprintf("%v", value),
		})
	}

	return flags
}

// DumpConfig dumps environment based configuration with current values of flags.
func DumpConfig() string {
	return DumpConfigMap(nil)
}

// DumpConfigMap dumps environment based configuration with current values overwritten by given flagMap.
// Includes "allexport" directives for bash.
func DumpConfigMap(flagMap map[string]string) string {
	buffer := &bytes.Buffer{}

	buffer.WriteString("# Export are values.\n")
	buffer.WriteString("set -o allexport\n")

	for _, fd := range getFlagsDefinition() {
		fmt.Fprintf(buffer, "\n# %s\n", fd.Help)
		if fd.Default != "" {
			fmt.Fprintf(buffer, "# Default: %s\n", fd.Default)
		}

		value := fd.Value
		if mapValue, ok := flagMap[fd.Name]; ok {
			value = mapValue
		}

		fmt.Fprintf(buffer, "%s_%s=%v\n", envPrefix, strings.ToUpper(fd.Name), value)
	}

	buffer.WriteString("set +o allexport")
	return buffer.String()
}

// GetFlags returns flags as map with current values.
func GetFlags() map[string]string {
	flagsMap := map[string]string{}
	for _, flag := range getFlagsDefinition() {
		flagsMap[flag.Name] = flag.Value
	}
	return flagsMap
}
