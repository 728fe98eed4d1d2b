package remote

import (
	"fmt"
	"strconv"
	"time"

	"github.com/maksimkurb/keen-console/src/internal/remote"
	"github.com/maksimkurb/keen-console/src/internal/store"
)

const (
	defaultOperationPath = "/api/{{operation}}"
	defaultTimeout       = 10 * time.Second
)

func init() {
	store.MustRegister("remote", storageFactory)
}

// storageFactory accepts the arguments url (required), token,
// operation_path and timeout (in seconds).
func storageFactory(args map[string]string) (store.ConfigStore, error) {
	baseURL := args["url"]
	if baseURL == "" {
		return nil, fmt.Errorf("no server URL configured")
	}

	operationPath := args["operation_path"]
	if operationPath == "" {
		operationPath = defaultOperationPath
	}

	timeout := defaultTimeout
	if v, ok := args["timeout"]; ok && v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds < 0 {
			return nil, fmt.Errorf("invalid timeout %q", v)
		}
		if seconds > 0 {
			timeout = time.Duration(seconds) * time.Second
		}
	}

	client, err := remote.NewClient(baseURL, operationPath, timeout, nil)
	if err != nil {
		return nil, err
	}

	return New(client, remote.Session{Token: args["token"]}), nil
}
