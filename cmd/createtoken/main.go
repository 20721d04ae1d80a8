package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"ambe.com/fieldops/security"
)

func main() {
	supervisorID := flag.String("supervisor", "", "supervisor id")
	name := flag.String("name", "", "supervisor display name")
	siteID := flag.String("site", "", "site id the device is bound to")
	deviceID := flag.String("device", "", "device id")
	expires := flag.Int64("expires", 86400*30, "token lifetime in seconds")
	flag.Parse()

	secret := os.Getenv("FIELDOPS_TOKEN_SECRET")
	if secret == "" {
		log.Fatal("FIELDOPS_TOKEN_SECRET is not set (base64 encoded)")
	}
	if *supervisorID == "" || *siteID == "" {
		log.Fatal("-supervisor and -site are required")
	}

	token, err := security.CreateDeviceToken(&security.DeviceIdentity{
		SupervisorID: *supervisorID,
		Name:         *name,
		SiteID:       *siteID,
		DeviceID:     *deviceID,
	}, secret, *expires)
	if err != nil {
		log.Fatalf("create token: %v", err)
	}

	fmt.Println(token)
}
