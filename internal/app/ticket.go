package app

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

var (
	ErrTicketConfig  = errors.New("ticket config is incomplete")
	ErrTicketInvalid = errors.New("replay ticket is invalid")
)

// Ticket identifies a game that can be replayed deterministically.
type Ticket struct {
	GameID  string
	Seed    int64
	Players []string
}

// TicketService signs and verifies replay tickets.
type TicketService struct {
	secret string
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewTicketService(secret, issuer string, ttl time.Duration) *TicketService {
	return &TicketService{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a ticket for the game. A zero ttl issues a ticket without expiry.
func (s *TicketService) Issue(t Ticket) (string, error) {
	if s == nil {
		return "", fmt.Errorf("ticket service is nil")
	}
	if s.secret == "" || s.issuer == "" {
		return "", ErrTicketConfig
	}
	if t.GameID == "" {
		return "", fmt.Errorf("game id is required")
	}

	now := s.now()
	claims := jwt.MapClaims{
		"iss":     s.issuer,
		"sub":     t.GameID,
		"iat":     now.Unix(),
		"seed":    strconv.FormatInt(t.Seed, 10),
		"players": t.Players,
	}
	if s.ttl > 0 {
		claims["exp"] = now.Add(s.ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Verify checks the signature, issuer and expiry and returns the ticket.
func (s *TicketService) Verify(tokenString string) (Ticket, error) {
	if s == nil || s.secret == "" || s.issuer == "" {
		return Ticket{}, ErrTicketConfig
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return Ticket{}, fmt.Errorf("%w: %v", ErrTicketInvalid, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Ticket{}, ErrTicketInvalid
	}
	if !claims.VerifyIssuer(s.issuer, true) {
		return Ticket{}, fmt.Errorf("%w: issuer mismatch", ErrTicketInvalid)
	}

	gameID, _ := claims["sub"].(string)
	seedStr, _ := claims["seed"].(string)
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if gameID == "" || err != nil {
		return Ticket{}, fmt.Errorf("%w: missing game id or seed", ErrTicketInvalid)
	}

	rawPlayers, _ := claims["players"].([]interface{})
	players := make([]string, 0, len(rawPlayers))
	for _, raw := range rawPlayers {
		id, ok := raw.(string)
		if !ok {
			return Ticket{}, fmt.Errorf("%w: bad player id", ErrTicketInvalid)
		}
		players = append(players, id)
	}

	return Ticket{GameID: gameID, Seed: seed, Players: players}, nil
}
