package utils

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
    hash, err := HashPassword("Sup3r$ecret", bcrypt.MinCost)
    require.NoError(t, err)
    assert.NotEqual(t, "Sup3r$ecret", hash)

    assert.True(t, VerifyPassword(hash, "Sup3r$ecret"))
    assert.False(t, VerifyPassword(hash, "sup3r$ecret"))
    assert.False(t, VerifyPassword("", "Sup3r$ecret"))
}

func TestHashPasswordClampsBadCost(t *testing.T) {
    // 0 and 99 are both outside what bcrypt accepts
    for _, cost := range []int{0, 99} {
        hash, err := HashPassword("Sup3r$ecret", cost)
        require.NoError(t, err)
        gotCost, err := bcrypt.Cost([]byte(hash))
        require.NoError(t, err)
        assert.Equal(t, bcrypt.DefaultCost, gotCost)
    }
}
