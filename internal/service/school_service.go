package service

import (
	"fmt"

	"github.com/gaon-hs/gaon-portal-api/internal/dto"
)

// SchoolService serves the legacy /school/* endpoints from hardcoded
// fixtures. Accuracy beyond the hardcoded data is out of scope.
type SchoolService struct {
	schoolName string
}

func NewSchoolService(schoolName string) *SchoolService {
	return &SchoolService{schoolName: schoolName}
}

func (s *SchoolService) Meal(date string) dto.SchoolMealResponse {
	return dto.SchoolMealResponse{
		Date:       date,
		SchoolName: s.schoolName,
		Items: []dto.SchoolMealItem{
			{Dish: "쌀밥/잡곡밥, 쇠고기미역국, 닭볶음탕, 배추김치", Calories: "750 Kcal", Nutrients: "단백질 30g, 탄수화물 100g", Type: "breakfast"},
			{Dish: "제육덮밥, 콩나물국, 깍두기, 요플레", Calories: "850 Kcal", Nutrients: "단백질 35g, 탄수화물 110g", Type: "lunch"},
			{Dish: "카레라이스, 장국, 단무지, 핫도그", Calories: "800 Kcal", Nutrients: "단백질 25g, 탄수화물 120g", Type: "dinner"},
		},
	}
}

func (s *SchoolService) Events(month string) dto.SchoolEventResponse {
	return dto.SchoolEventResponse{
		Month:      month,
		SchoolName: s.schoolName,
		Items: []dto.SchoolEventItem{
			{
				Title:       "개학식",
				StartDate:   month + "-02",
				EndDate:     month + "-02",
				Description: "2학기 개학식입니다.",
			},
		},
	}
}

func (s *SchoolService) Timetable(date string) dto.SchoolTimetableResponse {
	subjects := []string{"국어", "수학", "영어", "과학", "사회", "체육", "음악"}
	items := make([]dto.SchoolTimetableItem, 0, len(subjects))
	for i, subject := range subjects {
		items = append(items, dto.SchoolTimetableItem{
			Period:    fmt.Sprintf("%d", i+1),
			Subject:   subject,
			Teacher:   fmt.Sprintf("선생님%d", i+1),
			Classroom: fmt.Sprintf("1-%d", i+1),
		})
	}
	return dto.SchoolTimetableResponse{
		Date:       date,
		SchoolName: s.schoolName,
		Items:      items,
	}
}
