package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/nlgrid/eklok-forecast/internal/forecast"
	"github.com/nlgrid/eklok-forecast/internal/store"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *forecast.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/forecast", func(c *fiber.Ctx) error {
		result, err := latest(service)
		if err != nil {
			return err
		}
		return c.JSON(result)
	})

	v1.Get("/forecast/current", func(c *fiber.Ctx) error {
		result, err := latest(service)
		if err != nil {
			return err
		}
		return c.JSON(result.CurrentStatus)
	})

	v1.Get("/forecast/good-moment", func(c *fiber.Ctx) error {
		result, err := latest(service)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"goodMoment": result.IsGoodMoment(),
			"range":      result.CurrentPressure(),
			"band":       result.CurrentStatus.Band,
		})
	})

	v1.Get("/forecast/hourly", func(c *fiber.Ctx) error {
		day, err := parseDayQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result, err := latest(service)
		if err != nil {
			return err
		}

		analysis := analysisFor(result, day)
		hourly := []forecast.HourBucket{}
		if analysis != nil {
			hourly = analysis.Hourly
		}
		return c.JSON(fiber.Map{
			"day":            day,
			"available":      analysis != nil,
			"hourly":         hourly,
			"populatedHours": analysis.PopulatedHours(),
		})
	})

	v1.Get("/forecast/best", func(c *fiber.Ctx) error {
		var req bestQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result, err := latest(service)
		if err != nil {
			return err
		}

		analysis := analysisFor(result, req.Day)
		moments := []forecast.Moment{}
		if analysis != nil {
			moments = analysis.BestMoments
			if len(moments) > req.Limit {
				moments = moments[:req.Limit]
			}
		}

		resp := fiber.Map{
			"day":         req.Day,
			"available":   analysis != nil,
			"bestMoments": moments,
		}
		if best, ok := analysis.BestMoment(); ok {
			resp["best"] = best
		}
		if analysis != nil {
			resp["greenHours"] = analysis.GreenHours
		}
		return c.JSON(resp)
	})
}

// latest fetches the most recent result or maps its absence to a 404.
func latest(service *forecast.Service) (forecast.ForecastResult, error) {
	result, err := service.Latest()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return forecast.ForecastResult{}, fiber.NewError(fiber.StatusNotFound, "no forecast data available yet")
		}
		return forecast.ForecastResult{}, fiber.NewError(fiber.StatusInternalServerError, "failed to fetch forecast data")
	}
	return result, nil
}

func analysisFor(result forecast.ForecastResult, day string) *forecast.DayAnalysis {
	if day == "tomorrow" {
		return result.TomorrowAnalysis
	}
	return result.TodayAnalysis
}

// dayQuery holds the day selector shared by the hourly and best endpoints.
type dayQuery struct {
	Day string `validate:"required,oneof=today tomorrow"`
}

func parseDayQuery(c *fiber.Ctx) (string, error) {
	q := dayQuery{Day: c.Query("day", "today")}
	if err := validate.Struct(q); err != nil {
		return "", err
	}
	return q.Day, nil
}

// bestQuery holds query parameters for the best-moments endpoint.
type bestQuery struct {
	Day   string `validate:"required,oneof=today tomorrow"`
	Limit int    `validate:"min=1,max=5"`
}

func (b *bestQuery) bind(c *fiber.Ctx) error {
	day, err := parseDayQuery(c)
	if err != nil {
		return err
	}
	b.Day = day

	b.Limit = c.QueryInt("limit", 5)
	return validate.Struct(b)
}
