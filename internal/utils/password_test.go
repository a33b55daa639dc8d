package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
    hash, err := HashPassword("s3cret", 4) // min cost keeps the test fast
    if err != nil {
        t.Fatalf("HashPassword: %v", err)
    }
    if hash == "s3cret" {
        t.Fatal("hash equals plaintext")
    }
    if !VerifyPassword(hash, "s3cret") {
        t.Fatal("correct password rejected")
    }
    if VerifyPassword(hash, "wrong") {
        t.Fatal("wrong password accepted")
    }
}
