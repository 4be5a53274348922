package guard_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("constructed_guard_ignores_nil_error", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("label must be created via NewLabel")

		// When
		err := g.Validate(expected)

		// Then
		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardEmbeddedInValueObject shows the guard protecting a parcel-like value object.
func TestConstructorGuardEmbeddedInValueObject(t *testing.T) {
	errParcelNotConstructed := errors.New("parcel must be created via newParcel")

	type parcel struct {
		grams int
		guard guard.ConstructorGuard
	}

	newParcel := func(grams int) (parcel, error) {
		if grams <= 0 {
			return parcel{}, errors.New("grams must be greater than 0")
		}
		return parcel{grams: grams, guard: guard.NewConstructorGuard()}, nil
	}

	validate := func(p parcel) error {
		return p.guard.Validate(errParcelNotConstructed)
	}

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		p, err := newParcel(1500)

		require.NoError(t, err)
		require.NoError(t, validate(p))
		assert.Equal(t, 1500, p.grams)
	})

	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var p parcel

		assert.Equal(t, errParcelNotConstructed, validate(p))
	})

	t.Run("copies_keep_the_guard", func(t *testing.T) {
		p, err := newParcel(10)
		require.NoError(t, err)

		cp := p

		require.NoError(t, validate(cp))
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 100 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
