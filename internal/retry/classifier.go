package retry

import (
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassifier decides whether an error is worth retrying.
type ErrorClassifier interface {
	IsTransient(err error) bool
}

// ConnectionClassifier treats connection-level PostgreSQL failures as
// transient: SQLSTATE classes 08 (connection exception), 53 (insufficient
// resources) and 57 (operator intervention, e.g. 57P03 cannot_connect_now
// while the server starts), plus refused, reset and unreachable sockets.
// Authentication failures, unknown databases and DNS misses are fatal.
type ConnectionClassifier struct{}

func NewConnectionClassifier() *ConnectionClassifier {
	return &ConnectionClassifier{}
}

func (c *ConnectionClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		for _, class := range []string{"08", "53", "57"} {
			if strings.HasPrefix(pgErr.Code, class) {
				return true
			}
		}
		return false
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Timeout() {
			return true
		}
		for _, errno := range []error{syscall.ECONNREFUSED, syscall.ECONNRESET, syscall.ENETUNREACH, syscall.EHOSTUNREACH} {
			if errors.Is(opErr.Err, errno) {
				return true
			}
		}
	}

	// pgconn flattens some dial errors into text.
	msg := strings.ToLower(err.Error())
	for _, pattern := range []string{
		"connection refused",
		"connection reset",
		"server closed the connection",
		"the database system is starting up",
		"too many connections",
		"unexpected eof",
	} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
