package location

import (
	"fmt"
	"time"
)

// Load resolves a time zone name; "" and "Local" mean the process time zone
func Load(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("error while load time location %q: %w", name, err)
	}
	return loc, nil
}
