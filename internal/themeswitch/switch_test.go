package themeswitch

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fundraise-pro/themegen/internal/domain/theme"
	"github.com/fundraise-pro/themegen/internal/infrastructure/events"
	"github.com/fundraise-pro/themegen/internal/ports"
)

func TestSwitchToggle(t *testing.T) {
	t.Parallel()

	sw := New(theme.ModeLight, nil)
	require.Equal(t, theme.ModeLight, sw.Current())

	require.Equal(t, theme.ModeDark, sw.Toggle(context.Background()))
	require.Equal(t, theme.ModeDark, sw.Current())
	require.Equal(t, theme.ModeLight, sw.Toggle(context.Background()))
}

func TestSwitchInvalidInitialModeStartsLight(t *testing.T) {
	t.Parallel()

	require.Equal(t, theme.ModeLight, New(theme.Mode("sepia"), nil).Current())
}

func TestSwitchNotifiesSubscribersInOrder(t *testing.T) {
	t.Parallel()

	sw := New(theme.ModeLight, nil)

	var calls []string
	sw.Subscribe(func(m theme.Mode) { calls = append(calls, "a:"+m.String()) })
	sub := sw.Subscribe(func(m theme.Mode) { calls = append(calls, "b:"+m.String()) })
	sw.Subscribe(func(m theme.Mode) { calls = append(calls, "c:"+m.String()) })

	sw.Toggle(context.Background())
	require.Equal(t, []string{"a:dark", "b:dark", "c:dark"}, calls)

	sub.Unsubscribe()
	sub.Unsubscribe()
	calls = nil
	sw.Toggle(context.Background())
	require.Equal(t, []string{"a:light", "c:light"}, calls)
}

func TestSwitchSet(t *testing.T) {
	t.Parallel()

	sw := New(theme.ModeLight, nil)

	var notified int
	sw.Subscribe(func(theme.Mode) { notified++ })

	require.NoError(t, sw.Set(context.Background(), theme.ModeLight))
	require.Equal(t, 0, notified)

	require.NoError(t, sw.Set(context.Background(), theme.Mode("Dark")))
	require.Equal(t, theme.ModeDark, sw.Current())
	require.Equal(t, 1, notified)

	err := sw.Set(context.Background(), theme.Mode("sepia"))
	require.True(t, theme.HasCode(err, theme.ErrCodeValidation))
	require.Equal(t, theme.ModeDark, sw.Current())
}

func TestSwitchNilListener(t *testing.T) {
	t.Parallel()

	sw := New(theme.ModeDark, nil)
	sub := sw.Subscribe(nil)
	require.NotPanics(t, sub.Unsubscribe)
	require.NotPanics(t, func() { sw.Toggle(context.Background()) })
}

func TestSwitchPublishesToggledEvent(t *testing.T) {
	t.Parallel()

	publisher := events.NewLoggingPublisher(nil)

	var payloads []map[string]interface{}
	_, err := publisher.Subscribe(ports.EventThemeToggled, func(_ context.Context, event ports.DomainEvent) error {
		payloads = append(payloads, event.Payload().(map[string]interface{}))
		return nil
	})
	require.NoError(t, err)

	sw := New(theme.ModeLight, publisher)
	sw.Toggle(context.Background())

	require.Equal(t, []map[string]interface{}{{"from": "light", "to": "dark"}}, payloads)
}

func TestSwitchConcurrentReads(t *testing.T) {
	t.Parallel()

	sw := New(theme.ModeLight, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sw.Toggle(context.Background())
		}()
		go func() {
			defer wg.Done()
			if !sw.Current().Valid() {
				t.Error("switch exposed an invalid mode")
			}
		}()
	}
	wg.Wait()

	require.Equal(t, theme.ModeLight, sw.Current())
}
