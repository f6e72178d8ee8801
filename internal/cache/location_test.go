package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "time/tzdata"
)

func newCountingCache(capacity int) (*LocationCache, map[string]int) {
	calls := make(map[string]int)
	c := NewLocationCache(capacity)
	c.load = func(name string) (*time.Location, error) {
		calls[name]++
		return ParseLocation(name)
	}
	return c, calls
}

func TestLocationCache_Load_missThenHit_loadsOnce(t *testing.T) {
	//Arrange
	c, calls := newCountingCache(3)

	//Act
	loc1, err1 := c.Load("Europe/Moscow")
	loc2, err2 := c.Load("Europe/Moscow")

	//Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Same(t, loc1, loc2)
	assert.Equal(t, "Europe/Moscow", loc1.String())
	assert.Equal(t, 1, calls["Europe/Moscow"])
	assert.Equal(t, 1, c.Len())
}

func TestLocationCache_Load_fullQueue_evictsLeastRecentlyUsed(t *testing.T) {
	//Arrange
	c, calls := newCountingCache(2)
	_, _ = c.Load("Europe/Moscow")
	_, _ = c.Load("Asia/Tokyo")
	_, _ = c.Load("Europe/Moscow")

	//Act
	_, err := c.Load("America/New_York")

	//Assert
	require.NoError(t, err)
	frontItem := c.queue.Front().Value.(*entry)
	backItem := c.queue.Back().Value.(*entry)
	assert.Equal(t, "America/New_York", frontItem.name)
	assert.Equal(t, "Europe/Moscow", backItem.name)
	assert.Equal(t, 2, c.queue.Len())

	_, _ = c.Load("Asia/Tokyo")
	assert.Equal(t, 2, calls["Asia/Tokyo"])
}

func TestLocationCache_Load_unknown_notCached(t *testing.T) {
	//Arrange
	c, calls := newCountingCache(3)

	//Act
	_, err1 := c.Load("Mars/Olympus")
	_, err2 := c.Load("Mars/Olympus")

	//Assert
	assert.ErrorIs(t, err1, ErrUnknownLocation)
	assert.ErrorIs(t, err2, ErrUnknownLocation)
	assert.Equal(t, 2, calls["Mars/Olympus"])
	assert.Equal(t, 0, c.Len())
}

func TestLocationCache_Load_zeroCapacity_doesNotStore(t *testing.T) {
	//Arrange
	c, calls := newCountingCache(0)

	//Act
	_, _ = c.Load("UTC")
	loc, err := c.Load("UTC")

	//Assert
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
	assert.Equal(t, 2, calls["UTC"])
	assert.Equal(t, 0, c.Len())
}

func TestLocationCache_Remove_hasElement_removeIt(t *testing.T) {
	//Arrange
	c := NewLocationCache(3)
	_, _ = c.Load("UTC")
	_, _ = c.Load("Asia/Tokyo")

	//Act
	c.Remove("UTC")
	c.Remove("unknown")

	//Assert
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "Asia/Tokyo", c.queue.Front().Value.(*entry).name)
}

func TestLocationCache_Load_async_allKeysExists(t *testing.T) {
	//Arrange
	wg := sync.WaitGroup{}
	c := NewLocationCache(3)
	names := []string{"UTC", "Europe/Moscow", "+07:00"}
	wg.Add(len(names))

	//Act
	for _, name := range names {
		go func(name string) {
			defer wg.Done()
			_, _ = c.Load(name)
		}(name)
	}
	wg.Wait()

	//Assert
	assert.Equal(t, 3, c.Len())
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantOffset int
		wantName   string
	}{
		{name: "UTC", input: "UTC", wantOffset: 0, wantName: "UTC"},
		{name: "Z", input: "Z", wantOffset: 0, wantName: "UTC"},
		{name: "Смещение с двоеточием", input: "+07:00", wantOffset: 7 * 3600, wantName: "+07:00"},
		{name: "Отрицательное смещение без двоеточия", input: "-0330", wantOffset: -(3*3600 + 30*60), wantName: "-0330"},
		{name: "Только часы", input: "+03", wantOffset: 3 * 3600, wantName: "+03"},
		{name: "IANA", input: "Asia/Tokyo", wantOffset: 9 * 3600, wantName: "Asia/Tokyo"},
	}
	at := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := ParseLocation(tt.input)

			require.NoError(t, err)
			_, offset := at.In(loc).Zone()
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantName, loc.String())
		})
	}
}

func TestParseLocation_Error(t *testing.T) {
	for _, input := range []string{"+7:0", "+25:00", "+05:99", "-ab:cd", "Nowhere/City"} {
		_, err := ParseLocation(input)
		assert.ErrorIs(t, err, ErrUnknownLocation, input)
	}
}
