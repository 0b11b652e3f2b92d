package mkmodule

import (
	"github.com/rcops/mkmodule/pkg/errors"
	"github.com/rs/zerolog/log"
)

// LogFailure records the code and details of a failed run in the log
func LogFailure(err error) {
	event := log.Debug().Str("code", string(errors.GetErrorCode(err)))
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		event = event.Fields(details)
	}
	event.Err(err).Msg("Command failed")
}
