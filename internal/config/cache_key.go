package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// TimetableKey returns the cache key for a classroom's full weekly timetable.
func (r *CacheKeyStruct) TimetableKey(classroomID int) string {
	return fmt.Sprintf("classroom:%d:timetable", classroomID)
}

// SchoolSummaryKey returns the cache key for a school's attendance overview.
func (r *CacheKeyStruct) SchoolSummaryKey(schoolID int) string {
	return fmt.Sprintf("school:%d:attendance_summary", schoolID)
}

// AttendanceFeedChannel returns the Redis PubSub channel name carrying
// live attendance-taking events for a school.
func (r *CacheKeyStruct) AttendanceFeedChannel(schoolID int) string {
	return fmt.Sprintf("school:%d:attendance_feed", schoolID)
}

var CacheKey = NewCacheKeyStruct()
