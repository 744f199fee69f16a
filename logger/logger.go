// Package logger provides adapters for popular logger libraries to work with
// bst's Logger interface.
//
// Note that the standard library's *slog.Logger already implements
// bst.Logger directly.
//
//	zapLogger, _ := zap.NewProduction()
//	tree := bst.NewOrdered[int, string](&bst.Options[string]{
//	    Logger: logger.NewZap(zapLogger),
//	    Debug:  true,
//	})
package logger
