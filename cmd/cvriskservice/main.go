package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gopkg.in/mgo.v2"

	"github.com/intervention-engine/cvriskservice/config"
	"github.com/intervention-engine/cvriskservice/server"
)

func main() {
	app := &cli.App{
		Name:     "cvriskservice",
		Usage:    "cardiovascular risk scoring service",
		Commands: []*cli.Command{serveCommand(), scoreCommand()},
	}
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP scoring service",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to a YAML config file"},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	logrus.SetLevel(level)

	session, err := mgo.Dial(cfg.MongoURL)
	if err != nil {
		return errors.Wrap(err, "connecting to MongoDB")
	}
	defer session.Close()

	e := echo.New()
	e.Use(middleware.Logger())
	server.RegisterRoutes(e, server.NewService(session.DB(cfg.MongoDB)))
	logrus.WithField("addr", cfg.ListenAddr).Info("listening")
	return e.Start(cfg.ListenAddr)
}

func scoreCommand() *cli.Command {
	return &cli.Command{
		Name:  "score",
		Usage: "run one score over a cohort document and print the results",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true, Usage: "score to run, one of the /scores names"},
			&cli.StringFlag{Name: "input", Required: true, Usage: "JSON cohort document, - for stdin"},
			&cli.BoolFlag{Name: "mmol", Usage: "cholesterol inputs are mmol/L"},
			&cli.StringFlag{Name: "risk", Usage: "geographic risk tier for the SCORE family"},
			&cli.StringFlag{Name: "chol-cat", Usage: "Framingham CHD cholesterol model, tc or ldl"},
		},
		Action: runScore,
	}
}

func runScore(c *cli.Context) error {
	raw, err := readInput(c.String("input"))
	if err != nil {
		return err
	}
	cohort := server.Cohort{}
	if err := json.Unmarshal(raw, &cohort); err != nil {
		return errors.Wrap(err, "parsing cohort document")
	}
	if c.Bool("mmol") {
		cohort.Mmol = true
	}
	if v := c.String("risk"); v != "" {
		cohort.Risk = v
	}
	if v := c.String("chol-cat"); v != "" {
		cohort.CholCat = v
	}

	doc, err := server.NewService(nil).Calculate(c.String("name"), cohort)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(doc.Results, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		raw, err := io.ReadAll(os.Stdin)
		return raw, errors.Wrap(err, "reading stdin")
	}
	raw, err := os.ReadFile(path)
	return raw, errors.Wrap(err, "reading cohort document")
}
