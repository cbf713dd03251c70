package services

import "educator-site/internal/event"

var log = event.Log
