package command

import "github.com/sizzlecar/simple-redis/internal/resp"

func errArity(cmd string) resp.Frame {
	return resp.Errorf("ERR wrong number of arguments for '%s' command", cmd)
}

func errInvalid(field string) resp.Frame {
	return resp.Errorf("ERR invalid %s", field)
}

func errNotInteger() resp.Frame {
	return resp.SimpleError("ERR value is not an integer or out of range")
}

func bs(b []byte) string { return string(b) }
