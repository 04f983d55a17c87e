package appointment

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	DefaultStartWorkHour = 9
	DefaultEndWorkHour   = 17
)

var (
	firstNames = []string{"Gillian", "Kevin", "Arthur", "Danny"}
	lastNames  = []string{"Anderson", "Bacon", "Cohn", "DeVito", "Ericson", "Ford"}
)

// SlotGenerator places randomly generated appointments into free hourly
// slots inside work hours. Each round work hour is one slot.
type SlotGenerator struct {
	startHour int
	endHour   int

	mu    sync.Mutex
	faker *gofakeit.Faker
}

// NewSlotGenerator builds a generator working in [startHour, endHour).
// faker is the random source; pass a seeded one for reproducible output.
func NewSlotGenerator(faker *gofakeit.Faker, startHour, endHour int) (*SlotGenerator, error) {
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return nil, fmt.Errorf("invalid work hours [%d, %d)", startHour, endHour)
	}
	if faker == nil {
		faker = gofakeit.New(0)
	}
	return &SlotGenerator{
		startHour: startHour,
		endHour:   endHour,
		faker:     faker,
	}, nil
}

// Slots returns every open slot from the hour after now up to the end of
// endDate's work hours, in ascending order.
func (g *SlotGenerator) Slots(now, endDate time.Time) []time.Time {
	slots := g.slotsForToday(now)
	return append(slots, g.slotsForNextFullDays(now, endDate)...)
}

func (g *SlotGenerator) slotsForToday(now time.Time) []time.Time {
	var slots []time.Time

	nextHour := now.Hour() + 1
	if nextHour >= g.endHour {
		return slots
	}

	startHour := max(nextHour, g.startHour)
	today := DateOf(now)
	for hour := startHour; hour < g.endHour; hour++ {
		slots = append(slots, atHour(today, hour))
	}
	return slots
}

func (g *SlotGenerator) slotsForNextFullDays(now, endDate time.Time) []time.Time {
	var slots []time.Time

	fullDayCount := daysBetween(now, endDate)
	today := DateOf(now)
	for dayIndex := 1; dayIndex <= fullDayCount; dayIndex++ {
		day := today.AddDate(0, 0, dayIndex)
		for hour := g.startHour; hour < g.endHour; hour++ {
			slots = append(slots, atHour(day, hour))
		}
	}
	return slots
}

// Generate builds up to quantity appointments on distinct slots between now
// and endDate. Fewer are returned when not enough slots are open.
func (g *SlotGenerator) Generate(quantity int, now, endDate time.Time) []Appointment {
	slots := g.Slots(now, endDate)

	g.mu.Lock()
	defer g.mu.Unlock()

	indices := g.pickDistinct(quantity, len(slots))
	apps := make([]Appointment, 0, len(indices))
	for _, idx := range indices {
		apps = append(apps, Appointment{
			ClientName: g.randomName(),
			Time:       slots[idx],
			Price:      decimal.NewFromInt(int64(g.faker.Number(1, 20) * 10)),
			Status:     StatusPass,
		})
	}
	return apps
}

// pickDistinct draws min(count, n) indices from [0, n) without replacement
// and returns them sorted.
func (g *SlotGenerator) pickDistinct(count, n int) []int {
	count = min(count, n)
	if count <= 0 {
		return nil
	}

	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	// partial Fisher-Yates
	for i := 0; i < count; i++ {
		j := g.faker.Number(i, n-1)
		pool[i], pool[j] = pool[j], pool[i]
	}

	picked := pool[:count]
	sort.Ints(picked)
	return picked
}

func (g *SlotGenerator) randomName() string {
	return g.faker.RandomString(firstNames) + " " + g.faker.RandomString(lastNames)
}

func atHour(day time.Time, hour int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, hour, 0, 0, 0, day.Location())
}

// daysBetween counts calendar days from a's date to b's date, ignoring
// locations and DST shifts.
func daysBetween(a, b time.Time) int {
	return int(calendarDay(b).Sub(calendarDay(a)).Hours() / 24)
}
