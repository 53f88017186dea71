package ports

/*
Environment abstracts the process state the builtins touch: the working
directory, the home directory and environment variables.
*/
type Environment interface {
	Getwd() (string, error)
	Chdir(dir string) error
	HomeDir() (string, error)
	LookupEnv(key string) (string, bool)
}
