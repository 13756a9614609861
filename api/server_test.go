package api

import (
	"testing"

	"github.com/meghashyamc/finder/config"
	"github.com/stretchr/testify/require"
)

func TestServerBindsToConfiguredHost(t *testing.T) {
	testCases := []struct {
		name         string
		host         string
		expectedAddr string
	}{
		{name: "LoopbackFromConfigFile", expectedAddr: "127.0.0.1:8089"},
		{name: "HostFromEnvironment", host: "0.0.0.0", expectedAddr: "0.0.0.0:8089"},
		{name: "IPv6Host", host: "::1", expectedAddr: "[::1]:8089"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert := require.New(t)
			t.Setenv("ENV", "test")
			t.Setenv("PORT", "")
			t.Setenv("HOST", testCase.host)

			cfg, err := config.Load()
			assert.NoError(err)

			s := &server{cfg: cfg}
			assert.Equal(testCase.expectedAddr, s.addr())
		})
	}
}
