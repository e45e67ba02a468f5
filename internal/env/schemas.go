package env

import "strconv"

const (
	KeyDatabaseURL = "DATABASE_URL"
	KeyPort        = "PORT"
	KeyNodeEnv     = "NODE_ENV"
	KeyAPIURL      = "VITE_API_URL"

	DefaultPort = 3000
)

// NodeEnv is the runtime mode of the API process
type NodeEnv string

const (
	Development NodeEnv = "development"
	Test        NodeEnv = "test"
	Production  NodeEnv = "production"
)

func (e NodeEnv) String() string { return string(e) }

var (
	serverSchema = &schema{
		name:  "server",
		title: "Invalid server environment variables",
		rules: []rule{
			{key: KeyDatabaseURL, required: true, expected: "url", validate: "url"},
			{key: KeyPort, expected: "positive integer", coerce: coerceInt, validate: "gt=0", def: DefaultPort},
			{key: KeyNodeEnv, expected: "development | test | production", validate: "oneof=development test production", def: string(Development)},
		},
	}

	dbSchema = &schema{
		name:  "database",
		title: "Invalid DB environment variables",
		rules: []rule{
			{key: KeyDatabaseURL, required: true, expected: "url", validate: "url"},
		},
	}

	clientSchema = &schema{
		name:  "client",
		title: "Invalid client environment variables",
		rules: []rule{
			{key: KeyAPIURL, required: true, expected: "url", validate: "url"},
		},
	}
)

// ServerConfig is the validated runtime environment of the API process
type ServerConfig struct {
	DatabaseURL string
	Port        int
	NodeEnv     NodeEnv
}

// Values returns the config keyed by environment variable name
func (c ServerConfig) Values() map[string]string {
	return map[string]string{
		KeyDatabaseURL: c.DatabaseURL,
		KeyPort:        strconv.Itoa(c.Port),
		KeyNodeEnv:     string(c.NodeEnv),
	}
}

// DbConfig is the validated environment of the database tooling
type DbConfig struct {
	DatabaseURL string
}

func (c DbConfig) Values() map[string]string {
	return map[string]string{KeyDatabaseURL: c.DatabaseURL}
}

// ClientConfig is the validated environment exposed to the browser
type ClientConfig struct {
	APIURL string
}

func (c ClientConfig) Values() map[string]string {
	return map[string]string{KeyAPIURL: c.APIURL}
}

// ValidateServerEnv validates DATABASE_URL, PORT (default 3000) and
// NODE_ENV (default development).
func ValidateServerEnv(raw Raw) (ServerConfig, error) {
	v, err := serverSchema.parse(raw)
	if err != nil {
		return ServerConfig{}, err
	}
	return ServerConfig{
		DatabaseURL: v[KeyDatabaseURL].(string),
		Port:        v[KeyPort].(int),
		NodeEnv:     NodeEnv(v[KeyNodeEnv].(string)),
	}, nil
}

// ValidateDbEnv validates the connection URL used by migrations
func ValidateDbEnv(raw Raw) (DbConfig, error) {
	v, err := dbSchema.parse(raw)
	if err != nil {
		return DbConfig{}, err
	}
	return DbConfig{DatabaseURL: v[KeyDatabaseURL].(string)}, nil
}

// ValidateClientEnv validates VITE_API_URL
func ValidateClientEnv(raw Raw) (ClientConfig, error) {
	v, err := clientSchema.parse(raw)
	if err != nil {
		return ClientConfig{}, err
	}
	return ClientConfig{APIURL: v[KeyAPIURL].(string)}, nil
}
