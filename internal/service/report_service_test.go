package service

import (
	"math/rand"
	"testing"

	"github.com/classpoint/classpoint-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roster(names ...string) []model.Student {
	students := make([]model.Student, 0, len(names))
	for i, name := range names {
		students = append(students, model.Student{
			ID:   i + 1,
			Name: name,
			Roll: rollFor(i),
		})
	}
	return students
}

func rollFor(i int) string {
	return string(rune('A'+i)) + "-01"
}

func allRows() ReportQuery {
	return ReportQuery{All: true}
}

func TestBuildReport_Percentages(t *testing.T) {
	students := roster("Alice", "Bob")
	present := map[int]int{1: 3, 2: 1}

	report := BuildReport(students, present, 4, allRows())

	require.Len(t, report.Rows, 2)
	assert.Equal(t, 4, report.TotalClasses)
	assert.Equal(t, 2, report.TotalItems)

	assert.Equal(t, 3, report.Rows[0].PresentCount)
	assert.InDelta(t, 75.0, report.Rows[0].Percentage, 1e-9)
	assert.Equal(t, 1, report.Rows[1].PresentCount)
	assert.InDelta(t, 25.0, report.Rows[1].Percentage, 1e-9)
}

func TestBuildReport_RoundsToTwoDecimals(t *testing.T) {
	students := roster("Carol")
	report := BuildReport(students, map[int]int{1: 1}, 3, allRows())

	// 1/3 = 33.333..., rounded to 33.33.
	require.Len(t, report.Rows, 1)
	assert.InDelta(t, 33.33, report.Rows[0].Percentage, 1e-9)

	report = BuildReport(students, map[int]int{1: 2}, 3, allRows())
	// 2/3 = 66.666..., rounded to 66.67.
	assert.InDelta(t, 66.67, report.Rows[0].Percentage, 1e-9)
}

func TestBuildReport_ZeroDenominator(t *testing.T) {
	students := roster("Alice", "Bob", "Carol")

	report := BuildReport(students, map[int]int{}, 0, allRows())

	require.Len(t, report.Rows, 3)
	assert.Equal(t, 0, report.TotalClasses)
	for _, row := range report.Rows {
		assert.Equal(t, 0, row.PresentCount)
		assert.Equal(t, 0.0, row.Percentage, "zero sessions must yield 0, never NaN")
	}
}

func TestBuildReport_EmptyRoster(t *testing.T) {
	report := BuildReport(nil, map[int]int{1: 2}, 5, allRows())

	assert.NotNil(t, report.Rows)
	assert.Empty(t, report.Rows)
	assert.Equal(t, 0, report.TotalItems)
	assert.Equal(t, 5, report.TotalClasses)
}

func TestBuildReport_SearchIsCaseInsensitive(t *testing.T) {
	students := roster("Alice Johnson", "Bob Marley", "alicia keys")

	report := BuildReport(students, nil, 2, ReportQuery{Search: "ALIC", All: true})

	require.Len(t, report.Rows, 2)
	assert.Equal(t, 2, report.TotalItems)
	names := []string{report.Rows[0].Name, report.Rows[1].Name}
	assert.Contains(t, names, "Alice Johnson")
	assert.Contains(t, names, "alicia keys")
}

func TestBuildReport_SearchDoesNotAffectDenominator(t *testing.T) {
	students := roster("Alice", "Bob")

	report := BuildReport(students, nil, 7, ReportQuery{Search: "alice", All: true})

	assert.Equal(t, 1, report.TotalItems)
	assert.Equal(t, 7, report.TotalClasses, "totalClasses ignores the student filter")
}

func TestBuildReport_Sorting(t *testing.T) {
	students := []model.Student{
		{ID: 1, Name: "Zoe", Roll: "C-03"},
		{ID: 2, Name: "Adam", Roll: "A-01"},
		{ID: 3, Name: "Mia", Roll: "B-02"},
	}
	present := map[int]int{1: 1, 2: 3, 3: 2}

	byName := BuildReport(students, present, 4, ReportQuery{SortField: SortByName, All: true})
	assert.Equal(t, []string{"Adam", "Mia", "Zoe"}, rowNames(byName.Rows))

	byNameDesc := BuildReport(students, present, 4, ReportQuery{SortField: SortByName, SortOrder: "desc", All: true})
	assert.Equal(t, []string{"Zoe", "Mia", "Adam"}, rowNames(byNameDesc.Rows))

	byRoll := BuildReport(students, present, 4, ReportQuery{SortField: SortByRoll, All: true})
	assert.Equal(t, []string{"Adam", "Mia", "Zoe"}, rowNames(byRoll.Rows))

	byPresent := BuildReport(students, present, 4, ReportQuery{SortField: SortByPresent, All: true})
	assert.Equal(t, []string{"Zoe", "Mia", "Adam"}, rowNames(byPresent.Rows))

	byPercentageDesc := BuildReport(students, present, 4, ReportQuery{SortField: SortByPercentage, SortOrder: "desc", All: true})
	assert.Equal(t, []string{"Adam", "Mia", "Zoe"}, rowNames(byPercentageDesc.Rows))
}

func TestBuildReport_SortIsByteWise(t *testing.T) {
	// Byte-wise comparison puts all uppercase before lowercase. Pinned on
	// purpose so the order never silently follows a database collation.
	students := roster("apple", "Banana", "cherry", "Apricot")

	report := BuildReport(students, nil, 1, ReportQuery{SortField: SortByName, All: true})

	assert.Equal(t, []string{"Apricot", "Banana", "apple", "cherry"}, rowNames(report.Rows))
}

func TestBuildReport_Pagination(t *testing.T) {
	students := roster("A", "B", "C", "D", "E")

	page1 := BuildReport(students, nil, 2, ReportQuery{Page: 1, PageSize: 2})
	page2 := BuildReport(students, nil, 2, ReportQuery{Page: 2, PageSize: 2})
	page3 := BuildReport(students, nil, 2, ReportQuery{Page: 3, PageSize: 2})

	assert.Len(t, page1.Rows, 2)
	assert.Len(t, page2.Rows, 2)
	assert.Len(t, page3.Rows, 1)

	for _, page := range []model.AttendanceReport{page1, page2, page3} {
		assert.Equal(t, 5, page.TotalItems, "totalItems is the pre-pagination count")
	}
}

func TestBuildReport_PageBeyondEnd(t *testing.T) {
	students := roster("A", "B")

	report := BuildReport(students, nil, 2, ReportQuery{Page: 9, PageSize: 10})

	assert.NotNil(t, report.Rows)
	assert.Empty(t, report.Rows)
	assert.Equal(t, 2, report.TotalItems)
}

// Concatenating every page must reproduce the "all" result exactly, with no
// duplicates and no omissions, regardless of sort order.
func TestBuildReport_PaginationCompleteness(t *testing.T) {
	students := roster("Quinn", "Alice", "Mallory", "Bob", "Eve", "Trent", "Carol")
	present := map[int]int{1: 2, 2: 5, 3: 1, 4: 5, 5: 0, 6: 3, 7: 4}

	for _, order := range []string{"asc", "desc"} {
		for _, field := range []string{SortByName, SortByRoll, SortByPresent, SortByPercentage} {
			all := BuildReport(students, present, 5, ReportQuery{SortField: field, SortOrder: order, All: true})

			const pageSize = 3
			var combined []model.AttendanceReportRow
			for page := 1; ; page++ {
				p := BuildReport(students, present, 5, ReportQuery{SortField: field, SortOrder: order, Page: page, PageSize: pageSize})
				if len(p.Rows) == 0 {
					break
				}
				assert.LessOrEqual(t, len(p.Rows), pageSize)
				combined = append(combined, p.Rows...)
			}

			assert.Equal(t, all.Rows, combined, "field=%s order=%s", field, order)
		}
	}
}

// For any generated fixture, presentCount can never exceed totalClasses.
func TestBuildReport_PresentNeverExceedsTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(12) + 1
		total := rng.Intn(10)

		students := make([]model.Student, 0, n)
		present := make(map[int]int, n)
		for i := 0; i < n; i++ {
			students = append(students, model.Student{ID: i + 1, Name: rollFor(i % 20), Roll: rollFor(i % 20)})
			if total > 0 {
				present[i+1] = rng.Intn(total + 1)
			}
		}

		report := BuildReport(students, present, total, allRows())
		for _, row := range report.Rows {
			assert.LessOrEqual(t, row.PresentCount, report.TotalClasses)
			assert.GreaterOrEqual(t, row.Percentage, 0.0)
			assert.LessOrEqual(t, row.Percentage, 100.0)
		}
	}
}

func TestReportQuery_Normalize(t *testing.T) {
	q := ReportQuery{}.Normalize()
	assert.Equal(t, SortByName, q.SortField)
	assert.Equal(t, "asc", q.SortOrder)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.PageSize)

	q = ReportQuery{SortField: "bogus", SortOrder: "sideways", Page: -4, PageSize: 0}.Normalize()
	assert.Equal(t, SortByName, q.SortField)
	assert.Equal(t, "asc", q.SortOrder)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.PageSize)

	q = ReportQuery{SortField: SortByPercentage, SortOrder: "desc", Page: 3, PageSize: 25}.Normalize()
	assert.Equal(t, SortByPercentage, q.SortField)
	assert.Equal(t, "desc", q.SortOrder)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 25, q.PageSize)
}

func rowNames(rows []model.AttendanceReportRow) []string {
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	return names
}
