package database

import (
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
)

type Connection struct {
	User string
	Pass string
	Host string
	Port int
	// Schema is the default database of the connection, if any.
	Schema string
}

// MySQL returns the DSN for the connection. A host starting with "/" is a unix
// socket.
func (c Connection) MySQL() string {
	config := mysql.NewConfig()
	config.User = c.User
	config.Passwd = c.Pass
	config.DBName = c.Schema
	if strings.HasPrefix(c.Host, "/") {
		config.Net = "unix"
		config.Addr = c.Host
	} else {
		config.Net = "tcp"
		config.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	}
	config.ParseTime = true
	config.MultiStatements = false
	return config.FormatDSN()
}

// Open a connection pool to the server.
func (c Connection) Open() (*sql.DB, error) {
	db, err := sql.Open("mysql", c.MySQL())
	if err != nil {
		return nil, fmt.Errorf("failed to open connection to database: %w", err)
	}
	return db, nil
}
