// Package neis talks to the NEIS open-data hub for meal and timetable rows
// and memoizes successful responses in a bounded in-process cache.
package neis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/gaon-hs/gaon-portal-api/internal/mealparse"
	"github.com/gaon-hs/gaon-portal-api/internal/models"
	"github.com/gaon-hs/gaon-portal-api/pkg/config"
)

// Metrics receives upstream fetch and cache observations. Implemented by the
// service-layer metrics; nil disables instrumentation.
type Metrics interface {
	ObserveUpstreamFetch(endpoint, outcome string, duration time.Duration)
	RecordUpstreamCache(hit bool)
}

// TimetableResult carries the period→subject mapping for one (date, grade,
// class) tuple. Degraded marks a transport or decode failure; Periods is then
// empty and Cause holds the reason.
type TimetableResult struct {
	Periods  map[int]string
	Degraded bool
	Cause    error
}

// MealsResult carries the three-slot meal structure for one date. Degraded
// marks a transport or decode failure; Set is then the all-empty default.
type MealsResult struct {
	Set      models.MealSet
	Degraded bool
	Cause    error
}

// Client fetches NEIS feeds. Successful results are cached for the process
// lifetime in a bounded LRU keyed by the full argument tuple; failures are
// never cached so the next identical request retries. Concurrent fetches for
// the same uncached key may duplicate work; that is accepted, the cache
// converges to consistent content.
type Client struct {
	cfg     config.NEISConfig
	http    *http.Client
	cache   *lru.Cache[string, any]
	logger  *zap.Logger
	metrics Metrics
}

// NewClient constructs a Client. Capacity bounds the memo cache; values <= 0
// fall back to 128.
func NewClient(cfg config.NEISConfig, capacity int, logger *zap.Logger, metrics Metrics) (*Client, error) {
	if capacity <= 0 {
		capacity = 128
	}
	cache, err := lru.New[string, any](capacity)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: timeout},
		cache:   cache,
		logger:  logger,
		metrics: metrics,
	}, nil
}

// Timetable returns the period→subject mapping for date (YYYYMMDD) filtered
// by grade and class.
func (c *Client) Timetable(ctx context.Context, date, grade, class string) TimetableResult {
	key := fmt.Sprintf("timetable|%s|%s|%s", date, grade, class)
	if cached, ok := c.cacheGet(key); ok {
		if periods, ok := cached.(map[int]string); ok {
			return TimetableResult{Periods: periods}
		}
	}

	params := url.Values{}
	params.Set("ALL_TI_YMD", date)
	params.Set("GRADE", grade)
	params.Set("CLASS_NM", class)

	body, err := c.get(ctx, "hisTimetable", params)
	if err != nil {
		c.warn("timetable fetch failed", key, err)
		return TimetableResult{Periods: map[int]string{}, Degraded: true, Cause: err}
	}

	var envelope struct {
		HisTimetable []struct {
			Row []struct {
				Period  string `json:"PERIO"`
				Subject string `json:"ITRT_CNTNT"`
			} `json:"row"`
		} `json:"hisTimetable"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.warn("timetable decode failed", key, err)
		return TimetableResult{Periods: map[int]string{}, Degraded: true, Cause: err}
	}

	periods := map[int]string{}
	for _, section := range envelope.HisTimetable {
		for _, row := range section.Row {
			period, err := strconv.Atoi(row.Period)
			if err != nil {
				continue
			}
			periods[period] = row.Subject
		}
	}

	c.cache.Add(key, periods)
	return TimetableResult{Periods: periods}
}

// Meals returns the parsed meal set for date (YYYYMMDD). Rows are grouped by
// MMEAL_SC_CODE (1 breakfast, 2 lunch, 3 dinner); other codes contribute
// nothing. Slots without a row keep the empty default.
func (c *Client) Meals(ctx context.Context, date string) MealsResult {
	key := "meals|" + date
	if cached, ok := c.cacheGet(key); ok {
		if set, ok := cached.(models.MealSet); ok {
			return MealsResult{Set: set}
		}
	}

	params := url.Values{}
	params.Set("MLSV_YMD", date)

	body, err := c.get(ctx, "mealServiceDietInfo", params)
	if err != nil {
		c.warn("meals fetch failed", key, err)
		return MealsResult{Set: models.EmptyMealSet(), Degraded: true, Cause: err}
	}

	var envelope struct {
		MealServiceDietInfo []struct {
			Row []struct {
				MealCode string `json:"MMEAL_SC_CODE"`
				Dishes   string `json:"DDISH_NM"`
				Calories string `json:"CAL_INFO"`
			} `json:"row"`
		} `json:"mealServiceDietInfo"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.warn("meals decode failed", key, err)
		return MealsResult{Set: models.EmptyMealSet(), Degraded: true, Cause: err}
	}

	set := models.EmptyMealSet()
	for _, section := range envelope.MealServiceDietInfo {
		for _, row := range section.Row {
			slot := models.MealSlot{
				Menu:     mealparse.ParseDishes(row.Dishes),
				Calories: row.Calories,
			}
			switch row.MealCode {
			case "1":
				set.Breakfast = slot
			case "2":
				set.Lunch = slot
			case "3":
				set.Dinner = slot
			}
		}
	}

	c.cache.Add(key, set)
	return MealsResult{Set: set}
}

func (c *Client) cacheGet(key string) (any, bool) {
	value, ok := c.cache.Get(key)
	if c.metrics != nil {
		c.metrics.RecordUpstreamCache(ok)
	}
	return value, ok
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	params.Set("KEY", c.cfg.APIKey)
	params.Set("Type", "json")
	params.Set("ATPT_OFCDC_SC_CODE", c.cfg.OfficeCode)
	params.Set("SD_SCHUL_CODE", c.cfg.SchoolCode)

	reqURL := fmt.Sprintf("%s/%s?%s", c.cfg.BaseURL, endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.observe(endpoint, "error", duration)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.observe(endpoint, "error", duration)
		return nil, fmt.Errorf("neis %s: unexpected status %d", endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(endpoint, "error", duration)
		return nil, err
	}

	c.observe(endpoint, "ok", duration)
	return body, nil
}

func (c *Client) observe(endpoint, outcome string, duration time.Duration) {
	if c.metrics != nil {
		c.metrics.ObserveUpstreamFetch(endpoint, outcome, duration)
	}
}

func (c *Client) warn(msg, key string, err error) {
	if c.logger != nil {
		c.logger.Warn(msg, zap.String("key", key), zap.Error(err))
	}
}
