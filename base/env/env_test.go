package env

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPodName(t *testing.T) {
	t.Setenv("PODNAME", "k8ssta-nft-api-6868d88fbd-bz8zv")
	require.Equal(t, "k8ssta-nft-api-6868d88fbd-bz8zv", PodName())

	t.Setenv("PODNAME", "")
	host, _ := os.Hostname()
	require.Equal(t, host, PodName())
}
