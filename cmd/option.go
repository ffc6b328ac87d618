package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DBFileName is the log file created in the user's home directory.
const DBFileName = ".usedlog"

// Config is built once at start-up and handed to every command.
type Config struct {
	HomeDir string
	DBPath  string
}

// ConfigError reports a required environment variable that is missing.
type ConfigError struct {
	Var string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s env variable is not set", e.Var)
}

// LoadConfig resolves the log location from HOME via getenv.
func LoadConfig(getenv func(string) string) (*Config, error) {
	home := getenv("HOME")
	if home == "" {
		return nil, &ConfigError{Var: "HOME"}
	}
	return &Config{
		HomeDir: home,
		DBPath:  filepath.Join(home, DBFileName),
	}, nil
}

// LoadConfigFromEnv is LoadConfig over the process environment.
func LoadConfigFromEnv() (*Config, error) {
	return LoadConfig(os.Getenv)
}

// Options holds flag values shared by the commands.
type Options struct {
	Verbose bool
	Filter  string
}

// CountFlagOccurrences counts how many times a long flag (e.g., "--filter") appears
// in args before any "--" terminator, considering both "--flag value" and
// "--flag=value" forms.
func CountFlagOccurrences(args []string, flagName string) int {
	count := 0
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			break
		}
		if a == flagName {
			count++
			// Skip value if present and not another flag
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
			}
			continue
		}
		if strings.HasPrefix(a, flagName+"=") {
			count++
		}
	}
	return count
}

// UsedArgs is the result of splitting the arguments of the used command.
type UsedArgs struct {
	Items []string
	Help  bool
	Options
}

// ParseUsedArgs separates flags from item names. Only --filter, -v/--verbose
// and -h/--help are flags; every other argument, including ones starting with
// a dash, is an item. Arguments after "--" are always items.
func ParseUsedArgs(args []string) (UsedArgs, error) {
	var out UsedArgs
	filterSeen := false
	setFilter := func(v string) error {
		if filterSeen {
			return fmt.Errorf("--filter specified multiple times")
		}
		filterSeen = true
		out.Filter = v
		return nil
	}
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			out.Items = append(out.Items, args[i+1:]...)
			return out, nil
		case a == "-v" || a == "--verbose":
			out.Verbose = true
		case a == "-h" || a == "--help":
			out.Help = true
		case a == "--filter":
			if i+1 >= len(args) {
				return UsedArgs{}, fmt.Errorf("--filter requires a value")
			}
			i++
			if err := setFilter(args[i]); err != nil {
				return UsedArgs{}, err
			}
		case strings.HasPrefix(a, "--filter="):
			if err := setFilter(strings.TrimPrefix(a, "--filter=")); err != nil {
				return UsedArgs{}, err
			}
		default:
			out.Items = append(out.Items, a)
		}
	}
	return out, nil
}
