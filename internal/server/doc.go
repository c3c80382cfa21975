// Package server implements the TCP command server of a merkle-kv node.
//
// The wire format is a CRLF-terminated text protocol:
//
//	GET <key>          -> VALUE <value> | NOT_FOUND
//	SET <key> <value>  -> OK
//	DEL <key>          -> DELETED | NOT_FOUND
//	DELETE <key>       -> DELETED | NOT_FOUND
//
// Malformed input yields "ERROR <reason>". Mutations are forwarded to the
// replication publisher when one is configured.
package server
