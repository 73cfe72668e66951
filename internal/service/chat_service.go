package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gaon-hs/gaon-portal-api/internal/models"
	"github.com/gaon-hs/gaon-portal-api/internal/schedule"
)

// FallbackReply is served whenever the generative backend is unreachable,
// misconfigured or errors.
const FallbackReply = "죄송해요, 지금은 답변을 드리기 어려워요. 잠시 후 다시 시도해 주세요."

const personaPreamble = "너는 부산소프트웨어마이스터고등학교 학생들을 돕는 친절한 포털 도우미 '가온'이야. " +
	"아래의 오늘 학교 정보를 참고해서 학생의 질문에 한국어로 간결하고 다정하게 답해 줘."

// Generator produces a text reply for a single-turn prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ChatService renders today's meals and schedule into a context block and
// forwards it with the user's message to the generative backend.
type ChatService struct {
	generator Generator
	feed      MealFeed
	now       schedule.Clock
	loc       *time.Location
	metrics   *MetricsService
	logger    *zap.Logger
}

func NewChatService(generator Generator, feed MealFeed, now schedule.Clock, loc *time.Location, metrics *MetricsService, logger *zap.Logger) *ChatService {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &ChatService{generator: generator, feed: feed, now: now, loc: loc, metrics: metrics, logger: logger}
}

// Reply answers the user's message. Any backend failure yields the fixed
// fallback text; this method never returns an error.
func (s *ChatService) Reply(ctx context.Context, message string) string {
	prompt := s.buildPrompt(ctx, message)

	reply, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("chat backend failed", zap.Error(err))
		}
		if s.metrics != nil {
			s.metrics.RecordChatFallback()
		}
		return FallbackReply
	}
	return reply
}

func (s *ChatService) buildPrompt(ctx context.Context, message string) string {
	today := s.now().In(s.loc)

	var b strings.Builder
	b.WriteString(personaPreamble)
	b.WriteString("\n\n[오늘 날짜]\n")
	b.WriteString(today.Format("2006-01-02"))

	meals := s.feed.Meals(ctx, today.Format("20060102"))
	b.WriteString("\n\n[오늘의 급식]\n")
	writeMealLines(&b, "아침", meals.Set.Breakfast)
	writeMealLines(&b, "점심", meals.Set.Lunch)
	writeMealLines(&b, "저녁", meals.Set.Dinner)

	b.WriteString("\n[오늘의 일과]\n")
	for _, seg := range schedule.Table {
		label := seg.Label
		if seg.Kind == models.SegmentClass {
			label = subjectFor(seg.Period, nil)
		}
		fmt.Fprintf(&b, "- %s ~ %s: %s\n", seg.Start, seg.End, label)
	}

	b.WriteString("\n[학생의 질문]\n")
	b.WriteString(message)

	return b.String()
}

// writeMealLines renders one meal as a bullet list of dish names; allergy
// annotations are left out to keep the prompt compact.
func writeMealLines(b *strings.Builder, label string, slot models.MealSlot) {
	if len(slot.Menu) == 0 {
		fmt.Fprintf(b, "- %s: 정보 없음\n", label)
		return
	}
	names := make([]string, 0, len(slot.Menu))
	for _, item := range slot.Menu {
		names = append(names, item.Name)
	}
	fmt.Fprintf(b, "- %s: %s\n", label, strings.Join(names, ", "))
}
