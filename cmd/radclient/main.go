package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nasauth/radius/pkg/client"
	"github.com/nasauth/radius/pkg/dictionaries"
)

func parseAttributes(scanner *bufio.Scanner) (map[string]string, error) {
	attributes := make(map[string]string)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid attribute format: %q (expected 'Name = value')", line)
		}

		attributes[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	return attributes, nil
}

func main() {
	host := flag.String("host", "127.0.0.1", "RADIUS server host")
	secret := flag.String("secret", "", "Shared secret")
	action := flag.String("action", "auth", "Action: auth or acct")
	username := flag.String("user", "", "User name for auth")
	password := flag.String("password", "", "Password for auth")
	authPort := flag.Int("auth-port", client.DefaultAuthPort, "Authentication port")
	acctPort := flag.Int("acct-port", client.DefaultAcctPort, "Accounting port")
	retries := flag.Int("retries", client.DefaultRetries, "Send attempts per exchange")
	timeout := flag.Duration("timeout", client.DefaultTimeout, "Receive timeout per attempt")
	readStdin := flag.Bool("stdin", false, "Read extra attributes from stdin, one 'Name = value' per line")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -secret <secret> [-host <host>] [-action <auth|acct>] [flags]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "a shared secret is required")
		flag.Usage()
		os.Exit(2)
	}

	dict, err := dictionaries.NewDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build dictionary: %v\n", err)
		os.Exit(1)
	}

	c, err := client.New(client.Config{
		Host:       *host,
		Secret:     []byte(*secret),
		Dictionary: dict,
		AuthPort:   *authPort,
		AcctPort:   *acctPort,
		Retries:    *retries,
		Timeout:    *timeout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create client: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	attributes := map[string]string{}
	if *readStdin {
		attributes, err = parseAttributes(bufio.NewScanner(os.Stdin))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	start := time.Now()

	switch *action {
	case "auth":
		if *username == "" {
			fmt.Fprintln(os.Stderr, "auth requires -user and -password")
			os.Exit(2)
		}

		resp, err := c.AccessRequest(*username, *password, attributes)
		if err != nil {
			fmt.Fprintf(os.Stderr, "exchange failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%s in %s\n", resp.Code, time.Since(start).Round(time.Millisecond))

	case "acct":
		resp, err := c.AccountingRequest(attributes)
		if err != nil {
			fmt.Fprintf(os.Stderr, "exchange failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%s in %s\n", resp.Code, time.Since(start).Round(time.Millisecond))

	default:
		fmt.Fprintf(os.Stderr, "unknown action %q\n", *action)
		os.Exit(2)
	}
}
