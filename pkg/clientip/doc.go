// Package clientip resolves the address of the client behind reverse proxies
// and carries it on the request context so log records can include it.
//
// Proxy headers are checked in the order given to New (DefaultHeaders when
// none are given) and the first valid address wins. RemoteAddr is the
// fallback. Headers are client-controlled unless a proxy overwrites them, so
// the result is suitable for logging, not for access control.
//
//	ips := clientip.New()
//	r.Use(ips.Middleware)
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
package clientip
