package app

import (
	"testing"
	"time"

	"worknest/internal/config"
	"worknest/internal/profile"
	"worknest/internal/schedule"

	"github.com/stretchr/testify/assert"
)

func TestPeerWiring(t *testing.T) {
	inProcess := &config.Config{}
	split := &config.Config{
		ProfileBaseURL:  "http://profile:8080",
		ScheduleBaseURL: "http://schedule:8080",
		PeerTimeout:     5 * time.Second,
	}

	t.Run("without peer URLs the modules stay in-process", func(t *testing.T) {
		assert.IsType(t, &profile.LocalResolver{}, managerResolver(inProcess, nil))
		assert.IsType(t, &schedule.LocalPusher{}, schedulePusher(inProcess, nil))
	})

	t.Run("peer URLs switch to the HTTP clients", func(t *testing.T) {
		assert.IsType(t, &profile.Client{}, managerResolver(split, nil))
		assert.IsType(t, &schedule.Client{}, schedulePusher(split, nil))
	})
}
