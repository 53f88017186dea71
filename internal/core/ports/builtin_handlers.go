package ports

/*
BuiltinHandlers holds one handler per builtin command. Each receives the full
argument list, with args[0] being the name as typed, and returns nil or a
*shellerror.CommandError.
*/
type BuiltinHandlers interface {
	Echo(args []string) error
	Exit(args []string) error
	Type(args []string) error
	Cd(args []string) error
	Pwd(args []string) error
}
