package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"gopkg.in/mgo.v2/bson"

	"github.com/intervention-engine/cvriskservice/risk"
)

// RegisterRoutes sets up the http request handlers with Echo.
func RegisterRoutes(e *echo.Echo, svc *Service) {
	e.Use(middleware.Recover())

	e.GET("/scores", func(c echo.Context) error {
		return c.JSON(http.StatusOK, svc.Names())
	})

	e.POST("/calculate/:score", func(c echo.Context) error {
		cohort := Cohort{}
		if err := c.Bind(&cohort); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "malformed cohort document")
		}
		name := c.Param("score")
		doc, err := svc.Calculate(name, cohort)
		if err != nil {
			logrus.WithFields(logrus.Fields{"score": name, "error": err}).Warn("calculation failed")
			return echo.NewHTTPError(statusFor(err), err.Error())
		}
		return c.JSON(http.StatusOK, doc)
	})

	e.GET("/results/:id", func(c echo.Context) error {
		id := c.Param("id")
		if !bson.IsObjectIdHex(id) {
			return echo.NewHTTPError(http.StatusBadRequest, "bad result id, want a BSON object id")
		}
		doc, err := svc.Result(id)
		if err == ErrResultNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "no result with that id")
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{"id": id, "error": err}).Error("result lookup failed")
			return err
		}
		return c.JSON(http.StatusOK, doc)
	})
}

// statusFor maps the scoring error taxonomy onto HTTP statuses: request
// construction problems are 400s, per-record clinical values the server
// cannot score are 422s.
func statusFor(err error) int {
	if err == ErrUnknownScore {
		return http.StatusNotFound
	}
	switch err.(type) {
	case risk.InvalidOptionError, risk.ShapeError, risk.MissingInputError:
		return http.StatusBadRequest
	case risk.InvalidStratumError, risk.DomainError, risk.RecordErrors:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
