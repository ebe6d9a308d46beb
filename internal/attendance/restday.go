package attendance

// Legacy imports mark rest days with sentinel schedule times instead of a
// flag. This shim is the only place those strings are interpreted; everything
// downstream reads Record.IsRestDay.
var restDaySentinels = map[string]struct{}{
	"00:00:00": {},
	"00:00:01": {},
	"00:01:00": {},
}

func RestDayFromLegacySchedule(start, end string) bool {
	if _, ok := restDaySentinels[start]; ok {
		return true
	}
	_, ok := restDaySentinels[end]
	return ok
}
