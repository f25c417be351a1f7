package projections

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/kiratsb/vorpbot/internal/models"
)

var basePointsByPos = map[string]float64{
	"QB": 18.0,
	"RB": 12.0,
	"WR": 11.0,
	"TE": 8.0,
}

// MockSource is a deterministic dev source: base points per position
// plus up to ~6 points of noise hashed from (player, week, source).
type MockSource struct{}

func NewMockSource() *MockSource {
	return &MockSource{}
}

func (m *MockSource) ID() string          { return "mock" }
func (m *MockSource) Name() string        { return "Mock" }
func (m *MockSource) Description() string { return "Deterministic dev source for projections" }

func (m *MockSource) WeeklyPoints(players map[string]models.Player, week int) map[string]float64 {
	out := make(map[string]float64, len(players))
	for pid, p := range players {
		noise := hash01(fmt.Sprintf("%s:%d:%s", pid, week, m.ID())) * 6.0
		out[pid] = basePointsByPos[p.Pos] + noise
	}
	return out
}

// hash01 maps a key to a deterministic float in [0, 1].
func hash01(key string) float64 {
	sum := md5.Sum([]byte(key))
	h := hex.EncodeToString(sum[:])
	n, _ := strconv.ParseUint(h[:8], 16, 64)
	return float64(n) / float64(0xFFFFFFFF)
}
