// Package cache - LRU кэш часовых поясов
package cache

import (
	"container/list"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// ErrUnknownLocation Часовой пояс не найден.
var ErrUnknownLocation = errors.New("Неизвестный часовой пояс.")

type entry struct {
	name     string
	location *time.Location
}

// LocationCache LRU кэш загруженных часовых поясов (time.LoadLocation читает базу tzdata при каждом вызове).
type LocationCache struct {
	mutex    sync.Mutex
	capacity int
	queue    *list.List
	items    map[string]*list.Element
	load     func(name string) (*time.Location, error)
}

// NewLocationCache Кэш на capacity часовых поясов. При capacity <= 0 кэширование отключено.
func NewLocationCache(capacity int) *LocationCache {
	return &LocationCache{
		capacity: capacity,
		queue:    list.New(),
		items:    make(map[string]*list.Element),
		load:     ParseLocation,
	}
}

// Load Часовой пояс по имени: из кэша или загрузкой через ParseLocation.
// Ошибки загрузки не кэшируются.
func (c *LocationCache) Load(name string) (*time.Location, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if element, exists := c.items[name]; exists {
		c.queue.MoveToFront(element)
		return element.Value.(*entry).location, nil
	}

	loc, err := c.load(name)
	if err != nil {
		return nil, err
	}
	if c.capacity <= 0 {
		return loc, nil
	}

	if c.queue.Len() == c.capacity {
		c.clear()
	}
	c.items[name] = c.queue.PushFront(&entry{name: name, location: loc})
	return loc, nil
}

// Remove Удаление часового пояса из кэша.
func (c *LocationCache) Remove(name string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if element, found := c.items[name]; found {
		c.deleteItem(element)
	}
}

func (c *LocationCache) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.items)
}

// clear Вытеснение самого давно использованного часового пояса.
func (c *LocationCache) clear() {
	if element := c.queue.Back(); element != nil {
		c.deleteItem(element)
	}
}

func (c *LocationCache) deleteItem(element *list.Element) {
	item := c.queue.Remove(element).(*entry)
	delete(c.items, item.name)
}

// ParseLocation Разбор имени часового пояса: "" и "Local" - системный пояс, "UTC" и "Z" - UTC,
// смещение вида "+07:00" или "-0330" - фиксированный пояс, иначе имя из базы IANA ("Europe/Moscow").
func ParseLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	switch name {
	case "", "Local":
		return time.Local, nil
	case "UTC", "Z":
		return time.UTC, nil
	}
	if name[0] == '+' || name[0] == '-' {
		offset, err := parseOffset(name)
		if err != nil {
			return nil, errors.Wrapf(ErrUnknownLocation, "%q", name)
		}
		return time.FixedZone(name, offset), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownLocation, "%q: %v", name, err)
	}
	return loc, nil
}

// parseOffset Смещение "+HH:MM", "+HHMM" или "+HH" в секундах.
func parseOffset(text string) (int, error) {
	sign := 1
	if text[0] == '-' {
		sign = -1
	}
	digits := strings.ReplaceAll(text[1:], ":", "")
	if len(digits) != 2 && len(digits) != 4 {
		return 0, errors.Errorf("bad offset %q", text)
	}
	hours, err := strconv.Atoi(digits[:2])
	if err != nil {
		return 0, errors.Wrap(err, "parsing offset hours")
	}
	minutes := 0
	if len(digits) == 4 {
		if minutes, err = strconv.Atoi(digits[2:]); err != nil {
			return 0, errors.Wrap(err, "parsing offset minutes")
		}
	}
	if hours > 14 || minutes > 59 {
		return 0, errors.Errorf("offset out of range %q", text)
	}
	return sign * (hours*60*60 + minutes*60), nil
}
