/*
Package observability provides Prometheus instrumentation for the flowdoc
sync pipeline.

Collectors are created against an explicit registry so that embedding
applications and tests control registration.
*/
package observability
