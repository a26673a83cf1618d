package render

import (
	"strings"

	"github.com/dear-data/vjournal/internal/domain"
)

// AttendanceGrid renders visual standard D: a hand-drawn presence grid with
// green checks and absence dots.
func AttendanceGrid(scene domain.Scene) string {
	rows := scene.Dimensions.Rows
	if rows == nil {
		rows = []domain.GridRow{}
	}
	return strings.Replace(attendanceTemplate, "__ROWS__", mustJSON(rows), 1)
}

const attendanceTemplate = `
// Attendance Human Grid (Standard D)

var rows = __ROWS__;

var bounds = view.bounds;
var margin = 60;
var inner = bounds.expand(-margin);

var bg = new Path.Rectangle(bounds);
bg.fillColor = new Color(0.99,0.97,0.94);

var sheet = new Path.Rectangle(inner.expand(10));
sheet.fillColor = new Color(1,1,1,0.98);
sheet.strokeColor = new Color(0.86,0.84,0.82);
sheet.strokeWidth = 1.5;

var title = new PointText(new Point(inner.left, inner.top - 24));
title.justification = 'left';
title.content = "Attendance Grid";
title.fillColor = new Color(0.26,0.28,0.33);
title.fontSize = 18;

var maxCols = 0;
for (var i=0; i<rows.length; i++) {
    var vals = rows[i].values || [];
    if (vals.length > maxCols) maxCols = vals.length;
}

if (rows.length === 0 || maxCols === 0) {
    var msg = new PointText(inner.center);
    msg.justification = 'center';
    msg.content = "No attendance data.";
    msg.fillColor = new Color(0.35,0.36,0.4);
    msg.fontSize = 14;
} else {
    var top = inner.top + 40;
    var left = inner.left + 120;
    var bottom = inner.bottom - 40;
    var right = inner.right - 40;

    var rowH = (bottom - top) / rows.length;
    var colW = (right - left) / maxCols;

    for (var r = 0; r <= rows.length; r++) {
        var y = top + rowH * r + (Math.random()-0.5)*3;
        var line = new Path.Line(
            new Point(left-10, y),
            new Point(right+10, y)
        );
        line.strokeColor = new Color(0.9,0.9,0.9);
        line.strokeWidth = 1;
    }

    for (var c = 0; c <= maxCols; c++) {
        var x = left + colW * c + (Math.random()-0.5)*3;
        var line2 = new Path.Line(
            new Point(x, top-10),
            new Point(x, bottom+10)
        );
        line2.strokeColor = new Color(0.9,0.9,0.9);
        line2.strokeWidth = 1;
    }

    for (var i=0; i<rows.length; i++) {
        var row = rows[i];
        var vals = row.values || [];
        var rowLabel = row.label || ("Row " + (i+1));

        var ly = top + rowH * i + rowH*0.5;
        var lpt = new Point(inner.left + 20, ly+4);
        var txt = new PointText(lpt);
        txt.justification = 'left';
        txt.content = rowLabel;
        txt.fillColor = new Color(0.35,0.36,0.42);
        txt.fontSize = 10;

        for (var j=0; j<maxCols; j++) {
            var val = (j < vals.length) ? vals[j] : 0;
            var cx = left + colW * j + colW*0.5 + (Math.random()-0.5)*4;
            var cy = top + rowH * i + rowH*0.5 + (Math.random()-0.5)*3;

            var rect = new Path.Rectangle(
                new Point(cx - colW*0.35, cy - rowH*0.35),
                new Size(colW*0.7, rowH*0.7)
            );
            rect.strokeColor = new Color(0.8,0.8,0.8,0.9);
            rect.strokeWidth = 0.8;

            if (val === 1) {
                rect.fillColor = new Color(0.47,0.74,0.48,0.75);
                var chk = new Path();
                chk.add(new Point(cx - colW*0.15, cy));
                chk.add(new Point(cx - colW*0.04, cy + rowH*0.12));
                chk.add(new Point(cx + colW*0.16, cy - rowH*0.16));
                chk.strokeColor = new Color(0.15,0.35,0.18);
                chk.strokeWidth = 1.3;
            } else {
                rect.fillColor = new Color(0.98,0.97,0.95,0.4);
                var dot = new Path.Circle(new Point(cx, cy), 2);
                dot.fillColor = new Color(0.8,0.78,0.75,0.7);
            }
        }
    }
}
`
