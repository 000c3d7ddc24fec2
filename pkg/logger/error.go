package logger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Zero-1729/volt-sub001/pkg/logger/slogx"
	"github.com/Zero-1729/volt-sub001/pkg/stacktrace"
	"github.com/cockroachdb/errors"
)

func unsupportedOutputError(output string) error {
	return errors.Errorf("unsupported logger output %q, expected \"text\", \"json\" or \"gcp\"", output)
}

// errorAttrReplacer renders error attributes as their message.
func errorAttrReplacer(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) == 0 && attr.Key == ErrorKey {
		if err, ok := attr.Value.Any().(error); ok && err != nil {
			return slog.String(ErrorKey, err.Error())
		}
	}
	return attr
}

// middlewareErrorStackTrace adds the verbose error and its stack trace to records carrying an error.
func middlewareErrorStackTrace() middleware {
	return func(next handleFunc) handleFunc {
		return func(ctx context.Context, rec slog.Record) error {
			var extra []slog.Attr
			rec.Attrs(func(attr slog.Attr) bool {
				if attr.Key != slogx.ErrorKey {
					return true
				}
				if err, ok := attr.Value.Any().(error); ok && err != nil {
					extra = append(extra, slog.String(ErrorVerboseKey, fmt.Sprintf("%+v", err)))
					if st, ok := stacktrace.FromError(err); ok {
						extra = append(extra, slog.Any(ErrorStackTraceKey, st.Strings()))
					}
				}
				return false
			})
			rec.AddAttrs(extra...)
			return next(ctx, rec)
		}
	}
}
