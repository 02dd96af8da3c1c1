package conf

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Option interface {
	apply(p *parser)
}

type parser struct {
	v    *viper.Viper
	path string
}

type envPrefix struct {
	prefix string
}

func (o *envPrefix) apply(p *parser) {
	p.v.SetEnvPrefix(o.prefix)
}

func EnvPrefix(prefix string) Option {
	return &envPrefix{prefix}
}

type configPath struct {
	path string
}

func (o *configPath) apply(p *parser) {
	p.path = o.path
}

// ConfigPath points the parser to a config file. Empty path means env only.
func ConfigPath(path string) Option {
	return &configPath{path}
}

// https://github.com/spf13/viper/issues/188#issuecomment-399884438
func bindEnvs(v *viper.Viper, iface interface{}, parts ...string) {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)

	if ifv.Kind() == reflect.Ptr {
		bindEnvs(v, ifv.Elem().Interface(), parts...)
		return
	}

	for i := 0; i < ift.NumField(); i++ {
		fv := ifv.Field(i)
		t := ift.Field(i)
		name, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			name = t.Name
		}
		if fv.Kind() == reflect.Struct {
			bindEnvs(v, fv.Interface(), append(parts, name)...)
		} else {
			err := v.BindEnv(strings.Join(append(parts, name), "."))
			if err != nil {
				panic(err)
			}
		}
	}
}

func ParseConfig(config interface{}, options ...Option) error {
	p := &parser{v: viper.New()}
	for _, option := range options {
		option.apply(p)
	}
	p.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if len(p.path) > 0 {
		p.v.SetConfigFile(p.path)
		if err := p.v.ReadInConfig(); err != nil {
			return errors.Wrap(err, "Failed to load config")
		}
	}

	bindEnvs(p.v, config)

	if err := p.v.Unmarshal(config); err != nil {
		return errors.Wrap(err, "Failed to unmarshal config")
	}

	return nil
}
