// Package all registers every built-in store driver.
package all

import (
	// import all supported drivers
	_ "github.com/maksimkurb/keen-console/src/internal/store/drivers/bolt"
	_ "github.com/maksimkurb/keen-console/src/internal/store/drivers/memory"
	_ "github.com/maksimkurb/keen-console/src/internal/store/drivers/remote"
)
