package catalog

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/JaimeStill/backup-service/internal/storage"
	"github.com/spf13/viper"
)

// Config file discovery used when no explicit file is configured.
const configName = "vtsbackup"

var searchPaths = []string{".", "$HOME/.vtsbackup", "/etc/vtsbackup"}

func newViper(file string) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	if file != "" {
		v.SetConfigFile(file)
		return v
	}
	v.SetConfigName(configName)
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}
	return v
}

// parseModels reads every entry under "models". Model names are lower-cased
// by viper, matching the backup agent.
func parseModels(v *viper.Viper) (map[string]Model, error) {
	models := make(map[string]Model)
	for name := range v.GetStringMap("models") {
		m, err := parseModel(name, v.Sub("models."+name))
		if err != nil {
			return nil, err
		}
		models[name] = m
	}
	return models, nil
}

func parseModel(name string, v *viper.Viper) (Model, error) {
	m := Model{Name: name}
	if v == nil {
		return m, nil
	}

	m.Description = v.GetString("description")
	m.Schedule = Schedule{
		Cron:  v.GetString("schedule.cron"),
		Every: v.GetString("schedule.every"),
		At:    v.GetString("schedule.at"),
	}

	for key := range v.GetStringMap("storages") {
		m.Storages = append(m.Storages, parseStorage(key, v.Sub("storages."+key), v))
	}
	slices.SortFunc(m.Storages, func(a, b storage.Config) int {
		return strings.Compare(a.Name, b.Name)
	})

	m.DefaultStorage = v.GetString("default_storage")

	// Older agent configs declare a single destination under store_with.
	if len(m.Storages) == 0 && v.IsSet("store_with.type") {
		legacy := parseStorage("", v.Sub("store_with"), v)
		legacy.Name = legacy.Type
		m.Storages = append(m.Storages, legacy)
	}

	if len(m.Storages) == 0 {
		if m.DefaultStorage != "" {
			return m, fmt.Errorf("%w: %s: default_storage %q has no storages", ErrInvalidModel, name, m.DefaultStorage)
		}
		return m, nil
	}

	if m.DefaultStorage == "" {
		m.DefaultStorage = m.Storages[0].Name
	}
	if _, err := m.Storage(m.DefaultStorage); err != nil {
		return m, fmt.Errorf("%w: %s: default_storage %q not defined", ErrInvalidModel, name, m.DefaultStorage)
	}

	return m, nil
}

// credentialKeys are read from the model when a storage entry leaves them unset.
var credentialKeys = []string{"access_key_id", "secret_access_key", "token"}

// parseStorage reads a storage entry. String values expand environment
// variables so credentials can stay out of the file.
func parseStorage(name string, v, model *viper.Viper) storage.Config {
	if v == nil {
		v = viper.New()
	}
	get := func(key string) string {
		val := v.GetString(key)
		if val == "" && model != nil && slices.Contains(credentialKeys, key) {
			val = model.GetString(key)
		}
		return os.ExpandEnv(val)
	}
	return storage.Config{
		Name:            name,
		Type:            get("type"),
		Path:            get("path"),
		Bucket:          get("bucket"),
		Region:          get("region"),
		Endpoint:        get("endpoint"),
		AccessKeyID:     get("access_key_id"),
		SecretAccessKey: get("secret_access_key"),
		Token:           get("token"),
		Presign:         v.GetBool("presign"),
		PresignExpiry:   v.GetDuration("presign_expiry"),
	}
}
