package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.NotEmpty(t, cfg.Greeting)
	assert.NotEmpty(t, cfg.Farewell)
	assert.Equal(t, "script.txt", cfg.DefaultScriptName)
	assert.Equal(t, ".", cfg.Dir())
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"missing editor":             func(c *Config) { c.Editor = "" },
		"missing farewell":           func(c *Config) { c.Farewell = "" },
		"missing racket":             func(c *Config) { c.Racket = "" },
		"missing default script":     func(c *Config) { c.DefaultScriptName = "" },
		"port out of range":          func(c *Config) { c.SSH.Port = 70000 },
		"duplicate ssh usernames":    func(c *Config) { c.SSH.Users = append(c.SSH.Users, c.SSH.Users...) },
		"user with missing username": func(c *Config) { c.SSH.Users = append(c.SSH.Users, User{}) },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, ConfigurationName), defaultConfigData, 0600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dir())
	assert.Equal(t, filepath.Join(dir, ConfigurationName), cfg.Path())

	// Pointing at the file rather than the directory also works.
	cfg, err = Load(filepath.Join(dir, ConfigurationName))
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dir())
}

func TestLoad_missing(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.True(t, os.IsNotExist(err))
}

func TestLoad_unknownKey(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, ConfigurationName),
		[]byte("farewell: bye\neditor: nano\nracket: racket\ndefault_script_name: s.txt\ntypo_key: 1\n"), 0600))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestPasswords(t *testing.T) {
	cfg := Default()
	cfg.SSH.Users = []User{
		{Username: "ada", Passwords: []string{"a1", "a2"}},
		{Username: "bob", Passwords: []string{"b1"}},
	}

	assert.Equal(t, []string{"a1", "a2"}, cfg.Passwords("ada"))
	assert.Equal(t, []string{"b1"}, cfg.Passwords("bob"))
	assert.Empty(t, cfg.Passwords("eve"))
}
