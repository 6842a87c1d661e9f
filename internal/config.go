package internal

import (
	"flag"
	"fmt"
	"os"

	"github.com/smolin/riskgate/internal/model"
)

var c *Config

const (
	RunAddress        = "RUN_ADDRESS"
	DatabaseURI       = "DATABASE_URI"
	ScoringAddress    = "SCORING_ADDRESS"
	ScoringAPIKey     = "SCORING_API_KEY"
	KafkaBrokers      = "KAFKA_BROKERS"
	RedisAddress      = "REDIS_ADDRESS"
	WorkflowMode      = "WORKFLOW_MODE"
	DeclineAction     = "DECLINE_ACTION"
	ReportingCurrency = "REPORTING_CURRENCY"
)

const (
	WorkflowPreAuth  = "preauth"
	WorkflowPostAuth = "postauth"
)

const (
	ActionHold   = "hold"
	ActionCancel = "cancel"
	ActionRefund = "refund"
)

const (
	defaultRunAddress        = "localhost:8080"
	defaultScoringAddress    = "https://api.riskgate.example"
	defaultWorkflowMode      = WorkflowPostAuth
	defaultDeclineAction     = ActionHold
	defaultReportingCurrency = "USD"
)

const (
	host     = "localhost"
	port     = 5432
	user     = "postgres"
	password = "12345"
)

// TopicOrderUpdate carries order increment ids whose scoring record needs a
// follow-up update submission.
const TopicOrderUpdate = "riskgate.orderupdate"

type Config struct {
	RunAddress        string
	DatabaseURI       string
	ScoringAddress    string
	ScoringAPIKey     string
	KafkaBrokers      string
	RedisAddress      string
	WorkflowMode      string
	DeclineAction     string
	ReportingCurrency string

	NotifyProcessorDecline bool

	StoreName    string
	StorePhone   string
	StoreCountry string
}

func NewConfig() *Config {
	c = new(Config)

	defaultConn := fmt.Sprintf("host=%s port=%d user=%s "+
		"password=%s sslmode=disable",
		host, port, user, password)

	flag.StringVar(&c.RunAddress, "a", setEnvOrDefault(RunAddress, defaultRunAddress), "host to listen on")
	flag.StringVar(&c.DatabaseURI, "d", setEnvOrDefault(DatabaseURI, defaultConn), "postgres connection path")
	flag.StringVar(&c.ScoringAddress, "r", setEnvOrDefault(ScoringAddress, defaultScoringAddress), "risk scoring service address")
	flag.StringVar(&c.ScoringAPIKey, "k", setEnvOrDefault(ScoringAPIKey, ""), "risk scoring api key")
	flag.StringVar(&c.KafkaBrokers, "b", setEnvOrDefault(KafkaBrokers, "localhost:9092"), "kafka broker list")
	flag.StringVar(&c.RedisAddress, "c", setEnvOrDefault(RedisAddress, "localhost:6379"), "redis address")
	flag.StringVar(&c.WorkflowMode, "w", setEnvOrDefault(WorkflowMode, defaultWorkflowMode), "scoring workflow: preauth or postauth")
	flag.StringVar(&c.DeclineAction, "decline", setEnvOrDefault(DeclineAction, defaultDeclineAction), "declined order disposition: hold, cancel or refund")
	flag.StringVar(&c.ReportingCurrency, "currency", setEnvOrDefault(ReportingCurrency, defaultReportingCurrency), "currency reported to the scoring service")
	flag.BoolVar(&c.NotifyProcessorDecline, "notify-decline", os.Getenv("NOTIFY_PROCESSOR_DECLINE") == "true", "report processor declines to the scoring service")

	flag.Parse()
	return c
}

// StoreInformation is the merchant-configured store block embedded in the
// fulfillment section.
func (c *Config) StoreInformation(storeID int64) model.InquiryStore {
	return model.InquiryStore{
		ID:      fmt.Sprintf("%d", storeID),
		Name:    c.StoreName,
		Phone:   c.StorePhone,
		Country: c.StoreCountry,
	}
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}
