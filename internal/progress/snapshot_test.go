package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal_VersionCompatibility(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "current version",
			payload: `{"version":"v1.0.0","userId":"ama"}`,
		},
		{
			name:    "same major, newer minor",
			payload: `{"version":"v1.3.0","userId":"ama"}`,
		},
		{
			name:    "older major",
			payload: `{"version":"v0.9.0","userId":"ama"}`,
			wantErr: true,
		},
		{
			name:    "newer major",
			payload: `{"version":"v2.0.0","userId":"ama"}`,
			wantErr: true,
		},
		{
			name:    "missing version",
			payload: `{"userId":"ama"}`,
			wantErr: true,
		},
		{
			name:    "version without v prefix",
			payload: `{"version":"1.0.0","userId":"ama"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			payload: `{"version":"v1.0.0",`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up, err := Unmarshal([]byte(tt.payload))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ama", up.UserID)
		})
	}
}

func TestUnmarshal_DefaultsAndRepair(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		check   func(t *testing.T, up *UserProgress)
	}{
		{
			name:    "nil maps become empty",
			payload: `{"version":"v1.0.0","userId":"kofi"}`,
			check: func(t *testing.T, up *UserProgress) {
				require.NotNil(t, up.Proficiency)
				require.NotNil(t, up.Preferences)
				require.NotNil(t, up.StylePoints)
				require.NotNil(t, up.Demonstrations)
			},
		},
		{
			name:    "level floor is one",
			payload: `{"version":"v1.0.0","userId":"kofi","level":0}`,
			check: func(t *testing.T, up *UserProgress) {
				assert.Equal(t, 1, up.Level)
			},
		},
		{
			name:    "proficiency reclamped on load",
			payload: `{"version":"v1.0.0","userId":"kofi","proficiency":{"loops":1.7,"lists":-0.2}}`,
			check: func(t *testing.T, up *UserProgress) {
				assert.Equal(t, 1.0, up.Proficiency["loops"])
				assert.Equal(t, 0.0, up.Proficiency["lists"])
			},
		},
		{
			name:    "mastery wins over in-progress",
			payload: `{"version":"v1.0.0","userId":"kofi","mastered":["loops"],"inProgress":["loops","lists"]}`,
			check: func(t *testing.T, up *UserProgress) {
				assert.True(t, up.Mastered["loops"])
				assert.False(t, up.InProgress["loops"])
				assert.True(t, up.InProgress["lists"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up, err := Unmarshal([]byte(tt.payload))
			require.NoError(t, err)
			tt.check(t, up)
		})
	}
}

func TestMarshal_OmitsZeroLastActive(t *testing.T) {
	up := NewUserProgress("esi")
	data, err := Marshal(up)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "lastActiveDate")

	up.LastActiveDate = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	data, err = Marshal(up)
	require.NoError(t, err)
	assert.Contains(t, string(data), "lastActiveDate")
}
