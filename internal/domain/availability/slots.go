package availability

import (
	"time"

	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
)

// SlotDuration is fixed; granularity is not configurable.
const SlotDuration = time.Hour

type TimeSlot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}

// BookingInterval is an existing reservation that blocks availability.
// Status is carried for callers and logging only; overlap checks ignore it.
type BookingInterval struct {
	Start  time.Time
	End    time.Time
	Status string
}

// Overlaps reports whether [aStart,aEnd) and [bStart,bEnd) intersect.
// Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

func overlapsAny(start, end time.Time, bookings []BookingInterval) bool {
	for _, b := range bookings {
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}

// GenerateSlots builds the hourly slots of date within hours, flagging each one
// against bookings. On today's date the first slot starts at the next whole hour
// after now. bookings must not contain cancelled reservations: every interval
// given here blocks the slots it overlaps.
func GenerateSlots(
	hours StudioHours,
	bookings []BookingInterval,
	date time.Time,
	now time.Time,
	loc *time.Location,
) ([]TimeSlot, error) {

	if date.IsZero() {
		return []TimeSlot{}, ErrInvalidDate
	}

	open, closing, err := hours.Parse()
	if err != nil {
		return []TimeSlot{}, err
	}

	day := timezone.StartOfDay(date, loc)
	startMin := open.Minutes()
	closeMin := closing.Minutes()

	if timezone.SameDay(day, now, loc) {
		local := now.In(loc)
		hour := local.Hour()
		if local.Minute() > 0 {
			hour++
		}
		if rounded := hour * 60; rounded > startMin {
			startMin = rounded
		}
		if startMin >= closeMin {
			return []TimeSlot{}, nil
		}
	}

	dayStart := timezone.At(day, loc, startMin/60, startMin%60)
	dayEnd := timezone.At(day, loc, closing.Hour, closing.Minute)
	if !dayStart.Before(dayEnd) {
		return []TimeSlot{}, nil
	}

	slots := make([]TimeSlot, 0, int(dayEnd.Sub(dayStart)/SlotDuration))
	for cur := dayStart; !cur.Add(SlotDuration).After(dayEnd); cur = cur.Add(SlotDuration) {
		end := cur.Add(SlotDuration)
		slots = append(slots, TimeSlot{
			Start:     cur,
			End:       end,
			Available: !overlapsAny(cur, end, bookings),
		})
	}

	return slots, nil
}

// SlotsForDate is GenerateSlots with malformed input degraded to no slots.
func SlotsForDate(
	hours StudioHours,
	bookings []BookingInterval,
	date time.Time,
	now time.Time,
	loc *time.Location,
) []TimeSlot {
	slots, err := GenerateSlots(hours, bookings, date, now, loc)
	if err != nil {
		return []TimeSlot{}
	}
	return slots
}

func startingAfter(slots []TimeSlot, now time.Time) []TimeSlot {
	out := make([]TimeSlot, 0, len(slots))
	for _, s := range slots {
		if s.Start.After(now) {
			out = append(out, s)
		}
	}
	return out
}

func onlyAvailable(slots []TimeSlot) []TimeSlot {
	out := make([]TimeSlot, 0, len(slots))
	for _, s := range slots {
		if s.Available {
			out = append(out, s)
		}
	}
	return out
}

func bookingsOn(day time.Time, bookings []BookingInterval, loc *time.Location) []BookingInterval {
	var out []BookingInterval
	for _, b := range bookings {
		if timezone.SameDay(b.Start, day, loc) {
			out = append(out, b)
		}
	}
	return out
}
