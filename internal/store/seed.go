package store

import (
	"time"

	"github.com/etama123/mo-ment/internal/models"
)

const placeholderURL = "/placeholder.svg"

// Seed loads the sample calendars and their July 2025 photo buckets so
// the app is browsable without uploading anything first.
func Seed(calendars *CalendarStore, photos *PhotoStore, shares *ShareStore) {
	seeded := []struct {
		cal     models.Calendar
		photos  map[models.DateKey][]seedPhoto
		empties []models.DateKey
	}{
		{
			cal: models.Calendar{ID: "me", Name: "나의 캘린더", Type: models.CalendarOwn},
			photos: map[models.DateKey][]seedPhoto{
				"2025-07-01": {
					{"me-1-1", "나의 사진1", "메모1"},
				},
				"2025-07-15": {
					{"me-15-1", "주말 여행", "서울에서 즐거운 시간"},
					{"me-15-2", "카페에서", "맛있는 커피와 함께"},
				},
				"2025-07-20": {
					{"me-20-1", "친구들과", "오랜만에 만난 친구들"},
				},
			},
			// 2025-07-02 exists with no photos: empty and absent are
			// both "no photos" but stay distinct states.
			empties: []models.DateKey{"2025-07-02"},
		},
		{
			cal: models.Calendar{ID: "my-calendar-2", Name: "공연 기록", Type: models.CalendarOwn},
			photos: map[models.DateKey][]seedPhoto{
				"2025-07-05": {
					{"concert-5-1", "콘서트 홀", "클래식 공연 관람"},
					{"concert-5-2", "오케스트라", "베토벤 교향곡 5번"},
				},
				"2025-07-12": {
					{"concert-12-1", "뮤지컬", "레 미제라블 공연"},
					{"concert-12-2", "무대", "감동적인 공연이었다"},
				},
				"2025-07-25": {
					{"concert-25-1", "재즈 페스티벌", "야외 재즈 공연"},
				},
			},
		},
		{
			cal: models.Calendar{ID: "my-calendar-3", Name: "❤️", Type: models.CalendarOwn},
			photos: map[models.DateKey][]seedPhoto{
				"2025-07-03": {
					{"couple-3-1", "데이트", "영화관에서 영화 보기"},
					{"couple-3-2", "팝콘", "함께 먹는 팝콘"},
				},
				"2025-07-10": {
					{"couple-10-1", "카페 데이트", "아늑한 카페에서"},
					{"couple-10-2", "케이크", "맛있는 디저트"},
				},
				"2025-07-18": {
					{"couple-18-1", "공원 산책", "벚꽃 공원에서 산책"},
					{"couple-18-2", "벚꽃", "예쁜 벚꽃 사진"},
				},
				"2025-07-30": {
					{"couple-30-1", "기념일", "100일 기념일"},
					{"couple-30-2", "선물", "받은 선물들"},
					{"couple-30-3", "케이크", "기념 케이크"},
				},
			},
		},
		{
			cal: models.Calendar{ID: "friend1", Name: "친구1", Type: models.CalendarContributed},
			photos: map[models.DateKey][]seedPhoto{
				"2025-07-01": {
					{"f1-1-1", "친구1 사진1", "친구1 메모"},
					{"f1-1-2", "점심 식사", "맛있는 파스타"},
				},
				"2025-07-03": {
					{"f1-3-1", "운동 후", "헬스장에서 열심히"},
				},
				"2025-07-10": {
					{"f1-10-1", "영화 관람", "새로 나온 영화 봤어요"},
					{"f1-10-2", "팝콘과 함께", "영화관 팝콘은 최고!"},
				},
				"2025-07-18": {
					{"f1-18-1", "공원 산책", "날씨가 좋아서 산책"},
				},
				"2025-07-25": {
					{"f1-25-1", "생일 파티", "친구들과 생일 축하"},
					{"f1-25-2", "케이크", "맛있는 생일 케이크"},
					{"f1-25-3", "선물들", "받은 선물들"},
				},
			},
		},
		{
			cal: models.Calendar{ID: "friend2", Name: "친구2", Type: models.CalendarContributed},
			photos: map[models.DateKey][]seedPhoto{
				"2025-07-02": {
					{"f2-2-1", "친구2 사진1", "친구2 메모"},
				},
				"2025-07-05": {
					{"f2-5-1", "도서관에서", "시험 공부 중"},
					{"f2-5-2", "커피 한 잔", "공부할 때는 커피가 필수"},
				},
				"2025-07-12": {
					{"f2-12-1", "쇼핑", "새 옷 사러 쇼핑"},
				},
				"2025-07-22": {
					{"f2-22-1", "맛집 탐방", "SNS에서 본 맛집"},
					{"f2-22-2", "디저트", "후식으로 디저트"},
				},
				"2025-07-28": {
					{"f2-28-1", "운동", "요가 수업"},
					{"f2-28-2", "스트레칭", "유연성 향상 중"},
				},
			},
		},
	}

	now := time.Now().UTC()
	for _, entry := range seeded {
		cal := entry.cal
		cal.CreatedAt = now
		calendars.Add(cal)
		photos.CreateBucket(cal.ID)

		for date, list := range entry.photos {
			for _, sp := range list {
				title := sp.title
				note := sp.note
				photos.Add(cal.ID, models.Photo{
					ID:         sp.id,
					URL:        placeholderURL,
					Date:       date,
					Title:      &title,
					Note:       &note,
					UploadedAt: now,
				})
			}
		}
		for _, date := range entry.empties {
			photos.EnsureDate(cal.ID, date)
		}
	}

	// The prototype's share modal ships with two example invitees.
	shares.Add("me", models.SharedUser{
		ID: "share-1", Email: "friend@example.com",
		Permission: models.PermissionView, Status: models.StatusAccepted, CreatedAt: now,
	})
	shares.Add("me", models.SharedUser{
		ID: "share-2", Email: "family@example.com",
		Permission: models.PermissionEdit, Status: models.StatusPending, CreatedAt: now,
	})
}

type seedPhoto struct {
	id    string
	title string
	note  string
}
