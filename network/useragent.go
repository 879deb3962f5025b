package network

import (
	"github.com/lineup-cli/lineup/constant"
	"github.com/samber/lo"
)

// RandomUserAgent picks a browser User-Agent from the rotation pool.
func RandomUserAgent() string {
	return lo.Sample(constant.UserAgents)
}
