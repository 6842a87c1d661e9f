package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/smolin/riskgate/internal/model"
)

const (
	DecisionApprove = "APPROVE"
	DecisionDecline = "DECLINE"
	DecisionReview  = "REVIEW"
	DecisionPending = "PENDING"
)

// Verdict is the scoring service's answer to an inquiry. TransactionID is the
// service-assigned id used for later update submissions.
type Verdict struct {
	Decision      string
	TransactionID string
}

func (v Verdict) Declined() bool {
	return v.Decision == DecisionDecline
}

type IScoring interface {
	Submit(context.Context, *model.Inquiry) (Verdict, error)
	SubmitUpdate(context.Context, *model.Inquiry) (Verdict, error)
}

type ScoringClient struct {
	logger *zap.SugaredLogger
	url    string
	apiKey string
}

func NewScoringClient(logger *zap.SugaredLogger, url, apiKey string) *ScoringClient {
	return &ScoringClient{logger: logger, url: url, apiKey: apiKey}
}

func (s *ScoringClient) Submit(ctx context.Context, inq *model.Inquiry) (Verdict, error) {
	return s.makeRequest(ctx, s.url+"/commerce/v2/orders", inq)
}

func (s *ScoringClient) SubmitUpdate(ctx context.Context, inq *model.Inquiry) (Verdict, error) {
	return s.makeRequest(ctx, s.url+"/commerce/v2/orders/update", inq)
}

func (s *ScoringClient) makeRequest(ctx context.Context, url string, inq *model.Inquiry) (Verdict, error) {
	body, err := json.Marshal(inq)
	if err != nil {
		return Verdict{}, err
	}

	client := &http.Client{}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Verdict{}, err
	}

	token, err := s.bearerToken()
	if err != nil {
		return Verdict{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := client.Do(req)
	if err != nil {
		return Verdict{}, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusTooManyRequests || res.StatusCode >= http.StatusInternalServerError {
		return Verdict{}, ErrScoringUnavailable
	}
	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		s.logger.Errorf("scoring service returned %d for order %s", res.StatusCode, inq.MerchantOrderID)
		return Verdict{}, ErrScoringBadResponse
	}

	var buf bytes.Buffer
	_, err = io.Copy(&buf, res.Body)
	if err != nil {
		return Verdict{}, err
	}

	return parseVerdict(buf.Bytes())
}

func (s *ScoringClient) bearerToken() (string, error) {
	claims := jwt.MapClaims{
		"iss": "riskgate",
		"exp": time.Now().Add(time.Minute * 5).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString([]byte(s.apiKey))
	if err != nil {
		return "", err
	}

	return t, nil
}

type scoringResponse struct {
	Order struct {
		TransactionID string `json:"transactionId"`
		RiskInquiry   struct {
			Decision string `json:"decision"`
		} `json:"riskInquiry"`
	} `json:"order"`
}

func parseVerdict(body []byte) (Verdict, error) {
	res := scoringResponse{}

	err := json.Unmarshal(body, &res)
	if err != nil {
		return Verdict{}, err
	}

	decision := res.Order.RiskInquiry.Decision
	switch decision {
	case DecisionApprove, DecisionDecline, DecisionReview:
	case "":
		decision = DecisionPending
	default:
		return Verdict{}, ErrScoringBadResponse
	}

	return Verdict{
		Decision:      decision,
		TransactionID: res.Order.TransactionID,
	}, nil
}
