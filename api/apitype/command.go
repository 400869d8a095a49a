package apitype

// Command is the payload published on a broker topic.
type Command interface{}
