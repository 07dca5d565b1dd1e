package cerr

import (
	"github.com/apex/log"
	"github.com/cockroachdb/errors"
)

func Log(err error) {
	var ctxErr ContextualError
	if !errors.As(err, &ctxErr) {
		log.Error(err.Error())
		return
	}

	log.WithFields(log.Fields(ctxErr.Context.ContextFields)).Error(err.Error())
}
