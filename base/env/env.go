package env

import (
	"os"
)

// PodName is the kubernetes pod name, falling back to the host name outside a cluster
func PodName() string {
	if name := os.Getenv("PODNAME"); len(name) > 0 {
		return name
	}
	name, _ := os.Hostname()
	return name
}
