package processor

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		ObserveTransaction(reason string)
		ObserveEpoch(candidates, accepted, pool int, started time.Time)
		ObservePrecheck(err error, inputs int, started time.Time)
	}
)
