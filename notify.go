package main

type Notifier interface {
	NotifySyncResults(bucket string, result *SyncResult) error
}
