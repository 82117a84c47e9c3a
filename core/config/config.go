package config

import (
	_ "embed"
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "config.yaml"
	HostKeyName       = "host_key"
	AppLogName        = "app.log"
)

// Config holds the loom configuration, loaded from config.yaml in the
// configuration directory.
type Config struct {
	configDir string

	// Greeting is printed when the REPL starts.
	Greeting string `json:"greeting"`
	// Farewell is printed when input begins with exit.
	Farewell string `json:"farewell" validate:"required"`
	// Editor is the program the edit and edit-me builtins launch.
	Editor string `json:"editor" validate:"required"`
	// Racket is the binary the racket builtin forwards to.
	Racket string `json:"racket" validate:"required"`
	// DefaultScriptName is used by save-script when no name is given.
	DefaultScriptName string `json:"default_script_name" validate:"required"`

	SSH SSH `json:"ssh"`
}

// SSH configures the serve subcommand.
type SSH struct {
	Port  int    `json:"port" validate:"gte=0,lte=65535"`
	Users []User `json:"users" validate:"unique=Username,dive"`
}

type User struct {
	Username  string   `json:"username" validate:"required"`
	Passwords []string `json:"passwords" validate:"unique"`
}

// Validate the configuration for basic semantic errors.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the embedded default configuration rooted at the current
// directory.
func Default() *Config {
	var out Config
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	out.configDir = "."
	return &out
}

// Dir returns the configuration directory.
func (c *Config) Dir() string {
	if c.configDir == "" {
		return "."
	}
	return c.configDir
}

// Path returns the location of the config.yaml file, used by the edit-me
// builtin.
func (c *Config) Path() string {
	return filepath.Join(c.Dir(), ConfigurationName)
}

// HostKeyPEM returns the bytes of the SSH host key.
func (c *Config) HostKeyPEM() ([]byte, error) {
	return ioutil.ReadFile(filepath.Join(c.Dir(), HostKeyName))
}

// OpenAppLog opens the application log in an append only state.
func (c *Config) OpenAppLog() (*os.File, error) {
	return os.OpenFile(filepath.Join(c.Dir(), AppLogName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// Passwords returns allowable SSH passwords for the given username.
func (c *Config) Passwords(username string) []string {
	var out []string
	for _, u := range c.SSH.Users {
		if u.Username == username {
			out = append(out, u.Passwords...)
		}
	}
	return out
}
