// Package actions defines catalog promotion actions and the factories that
// create them. Action implementations register a Factory from init(); the
// configuration layer resolves tagged action services against those
// factories and the registry package folds them into a Catalog.
package actions
