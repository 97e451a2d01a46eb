package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cosmossdk.io/log"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	FlagHome         = "home"
	FlagLogLevel     = "log_level"
	FlagLogFormat    = "log_format"
	FlagLogColor     = "log_color"
	FlagLogTimestamp = "log_timestamp"
	FlagOutput       = "output"

	LogFormatPlain = "plain"
	LogFormatJSON  = "json"

	configFileName = "config"
	configFileType = "yaml"
	envFileName    = ".env"
)

var (
	ErrEmptyEnvPrefix = errors.New("envPrefixes parameter must contain at least one prefix")
)

// Context is established by the root command before any subcommand runs
type Context struct {
	Viper  *viper.Viper
	Logger log.Logger
	Home   string
	// Host executes commands and answers queries. Set by the root command.
	Host interface{}
}

type contextKey struct{}

// InterceptConfigsPreRunHandler performs a pre-run function for the root
// command. It binds flags and environment variables to a new Viper instance,
// exports <home>/.env, merges <home>/config.yaml when present and builds the
// logger. Precedence is flag, environment, config file, flag default. Command
// handlers fetch the result with GetContextFromCmd.
func InterceptConfigsPreRunHandler(cmd *cobra.Command, envPrefixes []string, allowEmptyEnv bool) error {
	if len(envPrefixes) == 0 {
		return ErrEmptyEnvPrefix
	}

	v := viper.New()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
		return err
	}

	v.SetEnvPrefix(envPrefixes[0])
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AllowEmptyEnv(allowEmptyEnv)
	v.AutomaticEnv()

	home := v.GetString(FlagHome)

	if err := loadEnvFile(home); err != nil {
		return err
	}

	if err := interceptConfigs(v, home); err != nil {
		return err
	}

	if err := bindFlags(cmd, v, envPrefixes); err != nil {
		return err
	}

	logger, err := newLogger(v, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	SetCmdContext(cmd, &Context{
		Viper:  v,
		Logger: logger,
		Home:   home,
	})

	return nil
}

// WithContext returns a copy of ctx carrying cctx. SetCmdContext fills an
// already present Context in place, so the caller of ExecuteContext observes it.
func WithContext(ctx context.Context, cctx *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, cctx)
}

// SetCmdContext stores cctx on the command's context
func SetCmdContext(cmd *cobra.Command, cctx *Context) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if existing, ok := ctx.Value(contextKey{}).(*Context); ok {
		*existing = *cctx
		return
	}

	cmd.SetContext(WithContext(ctx, cctx))
}

// GetContextFromCmd returns the Context set by the root command, or an empty
// one with a nop logger.
func GetContextFromCmd(cmd *cobra.Command) *Context {
	if ctx := cmd.Context(); ctx != nil {
		if cctx, ok := ctx.Value(contextKey{}).(*Context); ok {
			return cctx
		}
	}

	return &Context{
		Viper:  viper.New(),
		Logger: log.NewNopLogger(),
	}
}

func newLogger(v *viper.Viper, out io.Writer) (log.Logger, error) {
	logTimeFmt, err := parseTimestampFormat(v.GetString(FlagLogTimestamp))
	if err != nil {
		return nil, err
	}

	logLvlStr := v.GetString(FlagLogLevel)
	logLvl, err := zerolog.ParseLevel(logLvlStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level (%s): %w", logLvlStr, err)
	}

	logWriter := out

	if strings.ToLower(v.GetString(FlagLogFormat)) != LogFormatJSON {
		cl := zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    !v.GetBool(FlagLogColor),
			TimeFormat: logTimeFmt,
		}

		if logTimeFmt == "" {
			cl.PartsExclude = []string{
				zerolog.TimestampFieldName,
			}
		}
		logWriter = cl
	}

	logger := zerolog.New(logWriter).Level(logLvl)

	if logTimeFmt != "" {
		logger = logger.With().Timestamp().Logger()
	}

	return log.NewCustomLogger(logger), nil
}

func parseTimestampFormat(val string) (string, error) {
	switch val {
	case "":
		return "", nil
	case "rfc3339":
		return time.RFC3339, nil
	case "rfc3339nano":
		return time.RFC3339Nano, nil
	case "kitchen":
		return time.Kitchen, nil
	}

	return "", fmt.Errorf("invalid timestamp format (%s)", val) // nolint goerr113
}

func bindFlags(cmd *cobra.Command, v *viper.Viper, envPrefixes []string) error {
	var err error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}

		// Environment variables can't have dashes in them, so bind them to their equivalent
		// keys with underscores, e.g. --token-id to NFTMARKET_TOKEN_ID
		envBody := strings.ReplaceAll(f.Name, "-", "_")
		envBody = strings.ToUpper(strings.ReplaceAll(envBody, ".", "_"))

		for _, prefix := range envPrefixes {
			env := fmt.Sprintf("%s_%s", prefix, envBody)
			if err = v.BindEnv(f.Name, env); err != nil {
				return
			}
		}

		err = v.BindPFlag(f.Name, f)
		if err != nil {
			return
		}

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err = cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				return
			}
		}
	})

	return err
}

// interceptConfigs merges <home>/config.yaml into the Viper instance if it exists
func interceptConfigs(v *viper.Viper, home string) error {
	if home == "" {
		return nil
	}

	cfgFile := filepath.Join(home, configFileName+"."+configFileType)

	switch _, err := os.Stat(cfgFile); {
	case os.IsNotExist(err):
		return nil
	case err != nil:
		return err
	}

	v.SetConfigType(configFileType)
	v.SetConfigName(configFileName)
	v.AddConfigPath(home)

	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("failed to read in %s: %w", cfgFile, err) // nolint: goerr113
	}

	return nil
}

// loadEnvFile exports the variables of <home>/.env. Variables already present
// in the environment are left alone.
func loadEnvFile(home string) error {
	if home == "" {
		return nil
	}

	file := filepath.Join(home, envFileName)

	switch _, err := os.Stat(file); {
	case os.IsNotExist(err):
		return nil
	case err != nil:
		return err
	}

	if err := godotenv.Load(file); err != nil {
		return fmt.Errorf("failed to load %s: %w", file, err) // nolint: goerr113
	}

	return nil
}
